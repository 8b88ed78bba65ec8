package domain

import "strings"

type Type string

const (
	TypeInt    Type = "int"
	TypeString Type = "string"
	TypeVoid   Type = "void"
)

type Param struct {
	Name string `yaml:"name"`
	Type Type   `yaml:"type"`
}

func NewParam(name string, typ Type) Param {
	return Param{
		Name: name,
		Type: typ,
	}
}

// Signature describes one predefined function. Internal functions are
// emitted by the code generator and cannot be called by name.
type Signature struct {
	Name     string  `yaml:"name"`
	Return   Type    `yaml:"return"`
	Params   []Param `yaml:"params"`
	Internal bool    `yaml:"internal,omitempty"`
}

func NewSignature(name string, ret Type, internal bool, params ...Param) Signature {
	return Signature{
		Name:     name,
		Return:   ret,
		Params:   params,
		Internal: internal,
	}
}

func (s Signature) String() string {
	params := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		params = append(params, string(p.Type)+" "+p.Name)
	}

	return string(s.Return) + " " + s.Name + "(" + strings.Join(params, ", ") + ")"
}
