package content_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-builderdocs/pkg/content"
)

func TestPropType_JSONShape(t *testing.T) {
	single, err := json.Marshal(content.Type("boolean"))
	if err != nil {
		t.Fatalf("marshal single: %v", err)
	}
	if string(single) != `"boolean"` {
		t.Fatalf("single type should encode as a string, got %s", single)
	}

	union, err := json.Marshal(content.Union("'dialog'", "'alertdialog'"))
	if err != nil {
		t.Fatalf("marshal union: %v", err)
	}
	if string(union) != `["'dialog'","'alertdialog'"]` {
		t.Fatalf("union should encode as a list, got %s", union)
	}

	var decoded content.PropType
	if err := json.Unmarshal([]byte(`"number"`), &decoded); err != nil {
		t.Fatalf("unmarshal single: %v", err)
	}
	if diff := cmp.Diff(content.PropType{"number"}, decoded); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}

	if err := json.Unmarshal([]byte(`42`), &decoded); err == nil {
		t.Fatalf("expected error for numeric prop type")
	}
}

func TestPropType_NullDecodesToNil(t *testing.T) {
	encoded, err := json.Marshal(content.Prop{Name: "p"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var prop content.Prop
	if err := json.Unmarshal(encoded, &prop); err != nil {
		t.Fatalf("unmarshal %s: %v", encoded, err)
	}
	if prop.Type != nil {
		t.Fatalf("expected nil type after JSON round trip, got %#v", prop.Type)
	}
	if !prop.Type.Empty() {
		t.Fatalf("nil type should report empty")
	}

	prop = content.Prop{Type: content.Type("boolean")}
	if err := yaml.Unmarshal([]byte("name: p\ntype: null\n"), &prop); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}
	if prop.Type != nil {
		t.Fatalf("expected nil type from yaml null, got %#v", prop.Type)
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte("~"), &node); err != nil {
		t.Fatalf("parse node: %v", err)
	}
	decoded := content.Type("boolean")
	if err := decoded.UnmarshalYAML(node.Content[0]); err != nil {
		t.Fatalf("unmarshal node: %v", err)
	}
	if decoded != nil {
		t.Fatalf("expected nil type from null node, got %#v", decoded)
	}
}

func TestPropType_YAMLShape(t *testing.T) {
	var prop content.Prop
	doc := "name: role\ntype:\n  - \"'dialog'\"\n  - \"'alertdialog'\"\ndefault: \"'dialog'\"\n"
	if err := yaml.Unmarshal([]byte(doc), &prop); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if prop.Type.String() != "'dialog' | 'alertdialog'" {
		t.Fatalf("unexpected type %q", prop.Type.String())
	}

	out, err := yaml.Marshal(content.Prop{Name: "open", Type: content.Type("boolean")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "name: open\ntype: boolean\ndescription: \"\"\n" {
		t.Fatalf("unexpected yaml %q", out)
	}
}

func TestBuilderSchema_TitleFallback(t *testing.T) {
	schema := content.BuilderSchema("menu", content.BuilderDef{})
	if schema.Title != "menu" || schema.Kind != content.KindBuilder {
		t.Fatalf("unexpected schema %+v", schema)
	}
}

func TestNewBuilderData_StampsBuilder(t *testing.T) {
	data := sampleData()
	for _, el := range data.Elements() {
		if el.Builder != "popover" {
			t.Fatalf("element %q missing builder stamp", el.Title)
		}
	}
	if data.Name() != "popover" {
		t.Fatalf("unexpected name %q", data.Name())
	}
}

func TestClone_Independent(t *testing.T) {
	data := sampleData()
	clone := data.Clone()
	if diff := cmp.Diff(data, clone); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	clone.Schemas[0].Props[0].Type[0] = "string"
	clone.Schemas[1].DataAttributes[0].Value = "changed"
	clone.Features[0] = "changed"

	if data.Schemas[0].Props[0].Type[0] != "boolean" {
		t.Fatalf("clone shares prop type storage")
	}
	if data.Schemas[1].DataAttributes[0].Value == "changed" {
		t.Fatalf("clone shares data attributes")
	}
	if data.Features[0] == "changed" {
		t.Fatalf("clone shares features")
	}
}

func TestConcat_Fresh(t *testing.T) {
	a := []content.Prop{{Name: "a", Type: content.Type("string")}}
	b := []content.Prop{{Name: "b", Type: content.Type("number")}}
	joined := content.Concat(a, b)
	if len(joined) != 2 || joined[0].Name != "a" || joined[1].Name != "b" {
		t.Fatalf("unexpected concat result %+v", joined)
	}
	joined[0].Type[0] = "changed"
	if a[0].Type[0] != "string" {
		t.Fatalf("concat shares storage with inputs")
	}
}
