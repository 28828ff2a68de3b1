package html

import (
	"fmt"

	"github.com/goliatone/go-builderdocs/pkg/content"
	"github.com/goliatone/go-builderdocs/pkg/render"
	theme "github.com/goliatone/go-theme"
)

type pageView struct {
	Title    string      `json:"title"`
	Builder  string      `json:"builder"`
	Features []string    `json:"features,omitempty"`
	Props    []propView  `json:"props,omitempty"`
	Options  []string    `json:"options,omitempty"`
	States   []stateView `json:"states,omitempty"`
	// BuilderElements lists the elements returned by the builder; Elements
	// holds their individual schemas.
	BuilderElements []elementView  `json:"builderElements,omitempty"`
	Elements        []elementView  `json:"elements,omitempty"`
	Keyboard        []keyboardView `json:"keyboard,omitempty"`
}

type propView struct {
	Name        string   `json:"name"`
	Type        []string `json:"type"`
	Default     string   `json:"default,omitempty"`
	Description string   `json:"description"`
	LongType    string   `json:"longType,omitempty"`
	Option      bool     `json:"option,omitempty"`
}

type stateView struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type elementView struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Attributes  []attributeView `json:"attributes,omitempty"`
}

type attributeView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type keyboardView struct {
	Key      string `json:"key"`
	Behavior string `json:"behavior"`
}

type themeView struct {
	Name       string `json:"name,omitempty"`
	Variant    string `json:"variant,omitempty"`
	Style      string `json:"style,omitempty"`
	Stylesheet string `json:"stylesheet,omitempty"`
}

func buildPage(data content.BuilderData) (pageView, error) {
	builder, ok := data.Builder()
	if !ok {
		return pageView{}, fmt.Errorf("builder data has no builder schema")
	}

	page := pageView{
		Title:    builder.Title,
		Builder:  builder.Builder,
		Features: data.Features,
	}

	page.Options = builder.OptionNames()
	options := make(map[string]struct{}, len(page.Options))
	for _, name := range page.Options {
		options[name] = struct{}{}
	}
	for _, prop := range builder.Props {
		desc, err := inlineHTML(prop.Description)
		if err != nil {
			return pageView{}, fmt.Errorf("prop %q: %w", prop.Name, err)
		}
		_, isOption := options[prop.Name]
		page.Props = append(page.Props, propView{
			Name:        prop.Name,
			Type:        prop.Type,
			Default:     prop.Default,
			Description: desc,
			LongType:    prop.LongType,
			Option:      isOption,
		})
	}

	for _, state := range builder.States {
		desc, err := inlineHTML(state.Description)
		if err != nil {
			return pageView{}, fmt.Errorf("state %q: %w", state.Name, err)
		}
		page.States = append(page.States, stateView{Name: state.Name, Type: state.Type, Description: desc})
	}

	for _, el := range builder.Elements {
		desc, err := inlineHTML(el.Description)
		if err != nil {
			return pageView{}, fmt.Errorf("builder element %q: %w", el.Name, err)
		}
		page.BuilderElements = append(page.BuilderElements, elementView{Name: el.Name, Description: desc})
	}

	for _, el := range data.Elements() {
		desc, err := inlineHTML(el.Description)
		if err != nil {
			return pageView{}, fmt.Errorf("element %q: %w", el.Title, err)
		}
		view := elementView{Name: el.Title, Description: desc}
		for _, attr := range el.DataAttributes {
			value, err := inlineHTML(attr.Value)
			if err != nil {
				return pageView{}, fmt.Errorf("element %q attribute %q: %w", el.Title, attr.Name, err)
			}
			view.Attributes = append(view.Attributes, attributeView{Name: attr.Name, Value: value})
		}
		page.Elements = append(page.Elements, view)
	}

	for _, entry := range data.Keyboard {
		behavior, err := inlineHTML(entry.Behavior)
		if err != nil {
			return pageView{}, fmt.Errorf("key %q: %w", entry.Key, err)
		}
		page.Keyboard = append(page.Keyboard, keyboardView{Key: entry.Key, Behavior: behavior})
	}

	return page, nil
}

func buildTheme(cfg *theme.RendererConfig) (themeView, error) {
	if cfg == nil {
		return themeView{}, nil
	}
	style, err := render.CSSVarsStyle(cfg)
	if err != nil {
		return themeView{}, err
	}
	view := themeView{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Style:   style,
	}
	if cfg.AssetURL != nil {
		view.Stylesheet = cfg.AssetURL(ThemeStylesheetKey)
	}
	return view, nil
}
