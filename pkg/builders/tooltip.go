package builders

import (
	"github.com/goliatone/go-builderdocs/pkg/attrs"
	"github.com/goliatone/go-builderdocs/pkg/content"
	"github.com/goliatone/go-builderdocs/pkg/kbd"
	"github.com/goliatone/go-builderdocs/pkg/props"
)

const tooltipName = "tooltip"

// tooltipOptionProps are also returned as stores via the builder's options.
func tooltipOptionProps() []content.Prop {
	return []content.Prop{
		props.Positioning("position: 'top'"),
		props.ArrowSize(),
		props.CloseOnEscape(),
		props.ForceVisible(),
		props.Portal(),
		{
			Name:        "closeOnPointerDown",
			Type:        content.Type("boolean"),
			Default:     "true",
			Description: "Whether the tooltip closes when the pointer is down.",
		},
		{
			Name:        "openDelay",
			Type:        content.Type("number"),
			Default:     "1000",
			Description: "The delay in milliseconds before the tooltip opens after a pointer over event.",
		},
		{
			Name:        "closeDelay",
			Type:        content.Type("number"),
			Default:     "500",
			Description: "The delay in milliseconds before the tooltip closes after a pointer leave event.",
		},
	}
}

// TooltipData documents createTooltip.
func TooltipData() content.BuilderData {
	options := tooltipOptionProps()

	builder := content.BuilderSchema(tooltipName, content.BuilderDef{
		Title: "createTooltip",
		Props: content.Concat(options, props.Lifecycle()),
		Elements: []content.Element{
			{Name: "trigger", Description: "The builder store used to create the tooltip trigger."},
			{Name: "content", Description: "The builder store used to create the tooltip content."},
			{Name: "arrow", Description: "The builder store used to create the tooltip arrow."},
		},
		States: []content.State{
			{
				Name:        "open",
				Type:        "Readable<boolean>",
				Description: "A readable store that indicates whether the tooltip is open or not",
			},
		},
		Options: options,
	})

	trigger := content.ElementSchema("trigger", content.ElementDef{
		Description: "The tooltip trigger element.",
		DataAttributes: []content.DataAttribute{
			{Name: "data-state", Value: attrs.OpenClosed},
			{Name: attrs.MeltName(tooltipName, "trigger"), Value: attrs.Melt("tooltip trigger")},
		},
	})

	body := content.ElementSchema("content", content.ElementDef{
		Description: "The tooltip content element.",
		DataAttributes: []content.DataAttribute{
			{Name: attrs.MeltName(tooltipName, "content"), Value: attrs.Melt("tooltip content")},
		},
	})

	arrow := content.ElementSchema("arrow", content.ElementDef{
		Description: "The tooltip arrow element.",
		DataAttributes: []content.DataAttribute{
			{Name: "data-arrow", Value: attrs.True},
			{Name: attrs.MeltName(tooltipName, "arrow"), Value: attrs.Melt("tooltip arrow")},
		},
	})

	// Documentation order; the runtime handles these keys in a different order.
	keyboard := []content.KeyboardEntry{
		{Key: kbd.Tab, Behavior: "Opens/closes the tooltip without delay."},
		{Key: kbd.Space, Behavior: "If open, closes the tooltip without delay."},
		{Key: kbd.Enter, Behavior: "If open, closes the tooltip without delay."},
		{Key: kbd.Escape, Behavior: "If open, closes the tooltip without delay."},
	}

	features := []string{
		"Opens when the trigger is focused or hovered",
		"Closes when the trigger is activated or with escape",
		"Custom delay for opening and closing",
		"Supports custom positioning",
	}

	return content.NewBuilderData(builder, []content.Schema{trigger, body, arrow}, features, keyboard)
}
