package codec

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/sysml-go/sysml-core/graph"
	"github.com/sysml-go/sysml-core/model"
	"github.com/sysml-go/sysml-core/span"
)

type graphWire struct {
	Elements      []elementWire      `json:"elements"`
	Relationships []relationshipWire `json:"relationships"`
}

type elementWire struct {
	ID               string     `json:"id"`
	Kind             string     `json:"kind"`
	Name             string     `json:"name,omitempty"`
	Owner            string     `json:"owner,omitempty"`
	OwningMembership string     `json:"owningMembership,omitempty"`
	Props            []propWire `json:"props,omitempty"`
	Span             *spanWire  `json:"span,omitempty"`
}

type relationshipWire struct {
	ID     string     `json:"id"`
	Kind   string     `json:"kind"`
	Source string     `json:"source"`
	Target string     `json:"target"`
	Props  []propWire `json:"props,omitempty"`
}

type propWire struct {
	Key   string    `json:"key"`
	Value valueWire `json:"value"`
}

type valueWire struct {
	Kind  string      `json:"kind"`
	Bool  *bool       `json:"bool,omitempty"`
	Int   *int64      `json:"int,omitempty"`
	Float *float64    `json:"float,omitempty"`
	Str   *string     `json:"str,omitempty"`
	List  []valueWire `json:"list,omitempty"`
	Map   []propWire  `json:"map,omitempty"`
	Ref   *string     `json:"ref,omitempty"`
}

type spanWire struct {
	Source    string `json:"source"`
	StartLine int    `json:"startLine"`
	StartCol  int    `json:"startCol"`
	EndLine   int    `json:"endLine"`
	EndCol    int    `json:"endCol"`
}

// CanonicalJSON renders g as byte-stable JSON: elements and relationships
// sorted by id, property maps sorted by key. Calling this on graphs that
// hold the same elements and relationships (with the same ids) inserted
// in different orders yields identical bytes.
func CanonicalJSON(g *graph.ModelGraph) ([]byte, error) {
	elems := g.Elements()
	elemWires := make([]elementWire, 0, len(elems))
	for _, e := range elems {
		elemWires = append(elemWires, toElementWire(e))
	}
	sort.Slice(elemWires, func(i, j int) bool { return elemWires[i].ID < elemWires[j].ID })

	rels := g.Relationships()
	relWires := make([]relationshipWire, 0, len(rels))
	for _, r := range rels {
		relWires = append(relWires, toRelationshipWire(r))
	}
	sort.Slice(relWires, func(i, j int) bool { return relWires[i].ID < relWires[j].ID })

	return json.Marshal(graphWire{Elements: elemWires, Relationships: relWires})
}

func toElementWire(e model.Element) elementWire {
	w := elementWire{
		ID:    e.ID().String(),
		Kind:  e.Kind().String(),
		Props: toPropWires(e.Props()),
	}
	if name, ok := e.Name(); ok {
		w.Name = name
	}
	if owner, ok := e.Owner(); ok {
		w.Owner = owner.String()
	}
	if membership, ok := e.OwningMembership(); ok {
		w.OwningMembership = membership.String()
	}
	if sp := e.Span(); !sp.IsZero() {
		w.Span = toSpanWire(sp)
	}
	return w
}

func toRelationshipWire(r model.Relationship) relationshipWire {
	return relationshipWire{
		ID:     r.ID().String(),
		Kind:   r.Kind().String(),
		Source: r.Source().String(),
		Target: r.Target().String(),
		Props:  toPropWires(r.Props()),
	}
}

func toPropWires(props map[string]model.Value) []propWire {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	wires := make([]propWire, 0, len(keys))
	for _, k := range keys {
		wires = append(wires, propWire{Key: k, Value: toValueWire(props[k])})
	}
	return wires
}

func toValueWire(v model.Value) valueWire {
	switch v.Kind() {
	case model.ValueNull:
		return valueWire{Kind: "null"}
	case model.ValueBool:
		b, _ := v.AsBool()
		return valueWire{Kind: "bool", Bool: &b}
	case model.ValueInt:
		i, _ := v.AsInt()
		return valueWire{Kind: "int", Int: &i}
	case model.ValueFloat:
		f, _ := v.AsFloat()
		return valueWire{Kind: "float", Float: &f}
	case model.ValueString:
		s, _ := v.AsString()
		return valueWire{Kind: "string", Str: &s}
	case model.ValueList:
		items, _ := v.AsList()
		list := make([]valueWire, len(items))
		for i, item := range items {
			list[i] = toValueWire(item)
		}
		return valueWire{Kind: "list", List: list}
	case model.ValueMap:
		m, _ := v.AsMap()
		return valueWire{Kind: "map", Map: toPropWires(m)}
	case model.ValueReference:
		ref, _ := v.AsReference()
		s := ref.String()
		return valueWire{Kind: "reference", Ref: &s}
	default:
		return valueWire{Kind: fmt.Sprintf("unknown(%d)", v.Kind())}
	}
}

func toSpanWire(sp span.Span) *spanWire {
	return &spanWire{
		Source:    sp.Source.String(),
		StartLine: sp.Start.Line,
		StartCol:  sp.Start.Column,
		EndLine:   sp.End.Line,
		EndCol:    sp.End.Column,
	}
}
