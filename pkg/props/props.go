// Package props holds prop descriptors shared by several builders. Each
// function returns a fresh value so builders can embed them without sharing
// slices.
package props

import "github.com/goliatone/go-builderdocs/pkg/content"

// FloatingConfig is the expanded shape of the positioning option.
const FloatingConfig = `{
	placement?: Placement;
	strategy?: 'absolute' | 'fixed';
	offset?: { mainAxis?: number; crossAxis?: number; };
	gutter?: number;
	overflowPadding?: number;
	flip?: boolean;
	arrowSize?: number;
	overlap?: boolean;
	sameWidth?: boolean;
	fitViewport?: boolean;
	boundary?: Boundary;
}`

// PreventScroll documents body scroll locking while the element is open.
func PreventScroll() content.Prop {
	return content.Prop{
		Name:        "preventScroll",
		Type:        content.Type("boolean"),
		Default:     "true",
		Description: "Whether or not to prevent scrolling on the body when the element is open.",
	}
}

// CloseOnEscape documents closing on the escape key.
func CloseOnEscape() content.Prop {
	return content.Prop{
		Name:        "closeOnEscape",
		Type:        content.Type("boolean"),
		Default:     "true",
		Description: "Whether or not to close the element when the escape key is pressed.",
	}
}

// CloseOnOutsideClick documents closing on a click outside the element.
func CloseOnOutsideClick() content.Prop {
	return content.Prop{
		Name:        "closeOnOutsideClick",
		Type:        content.Type("boolean"),
		Default:     "true",
		Description: "Whether or not to close the element when a click occurs outside of it.",
	}
}

// Portal documents the portal target of floating content.
func Portal() content.Prop {
	return content.Prop{
		Name:        "portal",
		Type:        content.Union("string", "HTMLElement", "null"),
		Default:     "'body'",
		Description: "The element or selector to render the element into. Nested floating elements are automatically rendered into their parent if not specified.",
	}
}

// ForceVisible documents keeping the element mounted for custom transitions.
func ForceVisible() content.Prop {
	return content.Prop{
		Name:        "forceVisible",
		Type:        content.Type("boolean"),
		Default:     "false",
		Description: "Whether or not to force the element to always be visible. This is useful for custom transitions and animations using conditional blocks.",
	}
}

// Positioning documents the floating-element positioning option. def is the
// builder specific default, e.g. "position: 'top'".
func Positioning(def string) content.Prop {
	return content.Prop{
		Name:        "positioning",
		Type:        content.Type("FloatingConfig"),
		Default:     def,
		Description: "A configuration object which determines how the floating element is positioned relative to the trigger.",
		LongType:    FloatingConfig,
	}
}

// ArrowSize documents the arrow size in pixels.
func ArrowSize() content.Prop {
	return content.Prop{
		Name:        "arrowSize",
		Type:        content.Type("number"),
		Default:     "8",
		Description: "The size of the arrow which points to the trigger in pixels.",
	}
}

// Loop documents focus wrapping in roving-focus builders.
func Loop() content.Prop {
	return content.Prop{
		Name:        "loop",
		Type:        content.Type("boolean"),
		Default:     "false",
		Description: "Whether or not the focus should loop back to the first item when the last item is reached.",
	}
}

// Disabled documents the disabled flag.
func Disabled() content.Prop {
	return content.Prop{
		Name:        "disabled",
		Type:        content.Type("boolean"),
		Default:     "false",
		Description: "Whether or not the element is disabled.",
	}
}

// The lifecycle props below are shared by every stateful builder.

// DefaultOpen documents the uncontrolled initial open state.
func DefaultOpen() content.Prop {
	return content.Prop{
		Name:        "defaultOpen",
		Type:        content.Type("boolean"),
		Default:     "false",
		Description: "Whether the element is open by default.",
	}
}

// Open documents the controlled open store.
func Open() content.Prop {
	return content.Prop{
		Name:        "open",
		Type:        content.Type("Writable<boolean>"),
		Description: "A controlled open state store for the element. If provided, this will override the value passed to `defaultOpen`.",
	}
}

// OnOpenChange documents the open state change callback.
func OnOpenChange() content.Prop {
	return content.Prop{
		Name:        "onOpenChange",
		Type:        content.Type("ChangeFn<boolean>"),
		Description: "A callback called when the value of the `open` store should be changed. This is useful for controlling the open state from outside the builder.",
	}
}

// Lifecycle returns defaultOpen, open and onOpenChange in documentation order.
func Lifecycle() []content.Prop {
	return []content.Prop{DefaultOpen(), Open(), OnOpenChange()}
}
