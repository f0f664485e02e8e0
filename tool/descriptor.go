// Package tool describes upstream endpoints as data and turns tool arguments
// into upstream requests.
package tool

import (
	"net/http"
)

type Kind int

const (
	String Kind = iota + 1
	Integer
	Boolean
	StringList
	ObjectList
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case StringList:
		return "string list"
	case ObjectList:
		return "object list"
	default:
		return "unknown"
	}
}

// Placement says where parameters go on the outgoing request.
type Placement int

const (
	// Body sends parameters as a JSON object.
	Body Placement = iota + 1
	// Query always appends "?" followed by the parameters, even when none are set.
	Query
	// QueryIfAny appends "?" only when at least one parameter is set.
	QueryIfAny
	// None sends neither a body nor a query string.
	None
)

// Encoding applies to query values only.
type Encoding int

const (
	// Quote percent-encodes everything except unreserved characters and "/".
	Quote Encoding = iota
	// Raw interpolates values as given.
	Raw
)

type Param struct {
	// Name is the tool argument name exposed to callers.
	Name string
	// Wire is the upstream field name when it differs from Name.
	Wire        string
	Kind        Kind
	Required    bool
	Default     any
	OmitEmpty   bool
	Description string
}

func (p Param) wireName() string {
	if p.Wire != "" {
		return p.Wire
	}

	return p.Name
}

type Descriptor struct {
	Name        string
	Description string
	Method      string
	Path        string
	Placement   Placement
	Encoding    Encoding
	Params      []Param
	// Notes record known upstream behaviour that is reproduced as-is.
	Notes []string
}

// Request is what a descriptor produces for one call.
type Request struct {
	Method string
	Target string
	Body   map[string]any
}

// Post declares a POST tool whose parameters form the JSON body.
func Post(name, path, description string, params ...Param) Descriptor {
	return Descriptor{
		Name:        name,
		Description: description,
		Method:      http.MethodPost,
		Path:        path,
		Placement:   Body,
		Encoding:    Quote,
		Params:      params,
		Notes:       nil,
	}
}

// Get declares a GET tool whose parameters form a percent-encoded query string.
func Get(name, path, description string, params ...Param) Descriptor {
	placement := Query
	if len(params) == 0 {
		placement = None
	}

	return Descriptor{
		Name:        name,
		Description: description,
		Method:      http.MethodGet,
		Path:        path,
		Placement:   placement,
		Encoding:    Quote,
		Params:      params,
		Notes:       nil,
	}
}

func (d Descriptor) WithPlacement(placement Placement) Descriptor {
	d.Placement = placement

	return d
}

func (d Descriptor) WithEncoding(encoding Encoding) Descriptor {
	d.Encoding = encoding

	return d
}

func (d Descriptor) WithNotes(notes ...string) Descriptor {
	d.Notes = append(append([]string(nil), d.Notes...), notes...)

	return d
}

// Required declares a mandatory parameter.
func Required(name string, kind Kind, description string) Param {
	return Param{
		Name:        name,
		Wire:        "",
		Kind:        kind,
		Required:    true,
		Default:     nil,
		OmitEmpty:   false,
		Description: description,
	}
}

// Optional declares a parameter that is left out unless the caller supplies a
// non-empty value.
func Optional(name string, kind Kind, description string) Param {
	return Param{
		Name:        name,
		Wire:        "",
		Kind:        kind,
		Required:    false,
		Default:     nil,
		OmitEmpty:   true,
		Description: description,
	}
}

// Defaulted declares a parameter that is always sent, falling back to def.
func Defaulted(name string, kind Kind, def any, description string) Param {
	return Param{
		Name:        name,
		Wire:        "",
		Kind:        kind,
		Required:    false,
		Default:     def,
		OmitEmpty:   false,
		Description: description,
	}
}

// As renames the parameter on the wire.
func (p Param) As(wire string) Param {
	p.Wire = wire

	return p
}

// SkipEmpty drops the parameter when the supplied value is empty.
func (p Param) SkipEmpty() Param {
	p.OmitEmpty = true

	return p
}
