package builders

import (
	"github.com/goliatone/go-builderdocs/pkg/attrs"
	"github.com/goliatone/go-builderdocs/pkg/content"
	"github.com/goliatone/go-builderdocs/pkg/kbd"
	"github.com/goliatone/go-builderdocs/pkg/props"
)

const dialogName = "dialog"

// dialogOptionProps are also returned as stores via the builder's options.
func dialogOptionProps() []content.Prop {
	return []content.Prop{
		{
			Name:        "role",
			Type:        content.Union("'dialog'", "'alertdialog'"),
			Default:     "'dialog'",
			Description: "The `role` attribute of the dialog element.",
		},
		props.PreventScroll(),
		props.CloseOnEscape(),
		props.CloseOnOutsideClick(),
		props.Portal(),
		props.ForceVisible(),
	}
}

// DialogData documents createDialog.
func DialogData() content.BuilderData {
	options := dialogOptionProps()

	builder := content.BuilderSchema(dialogName, content.BuilderDef{
		Title: "createDialog",
		Props: content.Concat(options, props.Lifecycle()),
		Elements: []content.Element{
			{Name: "trigger", Description: "The builder store used to create the dialog trigger."},
			{Name: "overlay", Description: "The builder store used to create the dialog overlay."},
			{Name: "content", Description: "The builder store used to create the dialog content."},
			{Name: "close", Description: "The builder store used to create the dialog close button."},
			{Name: "title", Description: "The builder store used to create the dialog title."},
			{Name: "description", Description: "The builder store used to create the dialog description."},
		},
		States: []content.State{
			{
				Name:        "open",
				Type:        "Readable<boolean>",
				Description: "A readable store with the open state of the dialog.",
			},
		},
		Options: options,
	})

	trigger := content.ElementSchema("trigger", content.ElementDef{
		Description: "The element which triggers the dialog to open when clicked or pressed.",
		DataAttributes: []content.DataAttribute{
			{Name: attrs.MeltName(dialogName, "trigger"), Value: attrs.Melt("trigger")},
		},
	})

	overlay := content.ElementSchema("overlay", content.ElementDef{
		Description: "The overlay element which covers the page when the dialog is open.",
		DataAttributes: []content.DataAttribute{
			{Name: "data-state", Value: attrs.OpenClosed},
			{Name: attrs.MeltName(dialogName, "overlay"), Value: attrs.Melt("overlay")},
		},
	})

	body := content.ElementSchema("content", content.ElementDef{
		Description: "The element displayed within the dialog when it is open.",
		DataAttributes: []content.DataAttribute{
			{Name: "data-state", Value: attrs.OpenClosed},
			{Name: attrs.MeltName(dialogName, "content"), Value: attrs.Melt("content")},
		},
	})

	closeButton := content.ElementSchema("close", content.ElementDef{
		Description: "The element which closes the dialog when clicked or pressed.",
		DataAttributes: []content.DataAttribute{
			{Name: attrs.MeltName(dialogName, "close"), Value: attrs.Melt("close")},
		},
	})

	title := content.ElementSchema("title", content.ElementDef{
		Description: "The title of the dialog. Used for accessibility purposes.",
		DataAttributes: []content.DataAttribute{
			{Name: attrs.MeltName(dialogName, "title"), Value: attrs.Melt("title")},
		},
	})

	description := content.ElementSchema("description", content.ElementDef{
		Description: "The description of the dialog. Used for accessibility purposes.",
		DataAttributes: []content.DataAttribute{
			{Name: attrs.MeltName(dialogName, "description"), Value: attrs.Melt("description")},
		},
	})

	keyboard := []content.KeyboardEntry{
		{Key: kbd.Space, Behavior: "Opens/closes the dialog."},
		{Key: kbd.Enter, Behavior: "Opens/closes the dialog."},
		{Key: kbd.Tab, Behavior: "Moves focus to the next focusable element within the dialog."},
		{Key: kbd.ShiftTab, Behavior: "Moves focus to the previous focusable element within the dialog."},
		{Key: kbd.Escape, Behavior: "Closes the dialog and moves focus to the trigger element."},
	}

	features := []string{
		"Fully managed focus",
		"Can be controlled or uncontrolled",
		"Esc closes the component automatically",
	}

	return content.NewBuilderData(
		builder,
		[]content.Schema{trigger, overlay, body, closeButton, title, description},
		features,
		keyboard,
	)
}
