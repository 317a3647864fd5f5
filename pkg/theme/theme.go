package theme

// Colors is the palette a client renders a screen with. The service hands it to
// clients read-only; screens never reach into ambient state for it.
type Colors struct {
	PrimaryBackground   string `json:"primaryBackground"`
	SecondaryBackground string `json:"secondaryBackground"`
	InputBackground     string `json:"inputBackground"`
	PrimaryText         string `json:"primaryText"`
	SecondaryText       string `json:"secondaryText"`
	PlaceholderText     string `json:"placeholderText"`
	MessageBubbleUser   string `json:"messageBubbleUser"`
	MessageBubbleAI     string `json:"messageBubbleAI"`
	Primary             string `json:"primary"`
	Secondary           string `json:"secondary"`
	Accent              string `json:"accent"`
	IconActive          string `json:"iconActive"`
	IconInactive        string `json:"iconInactive"`
	HeaderBackground    string `json:"headerBackground"`
	Border              string `json:"border"`
	CodeBlockBackground string `json:"codeBlockBackground"`
	LoadingText         string `json:"loadingText"`
}

var lightColors = Colors{
	PrimaryBackground:   "#FFFFFF",
	SecondaryBackground: "#F5F5F5",
	InputBackground:     "#EEEEEE",
	PrimaryText:         "#333333",
	SecondaryText:       "#666666",
	PlaceholderText:     "#999999",
	MessageBubbleUser:   "#4A90E2",
	MessageBubbleAI:     "#F0F0F0",
	Primary:             "#4A90E2",
	Secondary:           "#34C759",
	Accent:              "#5856D6",
	IconActive:          "#4A90E2",
	IconInactive:        "#666666",
	HeaderBackground:    "#FFFFFF",
	Border:              "#E0E0E0",
	CodeBlockBackground: "#F5F5F5",
	LoadingText:         "#666666",
}

var darkColors = Colors{
	PrimaryBackground:   "#1A1A1A",
	SecondaryBackground: "#2A2A2A",
	InputBackground:     "#3A3A3A",
	PrimaryText:         "#FFFFFF",
	SecondaryText:       "#CCCCCC",
	PlaceholderText:     "#999999",
	MessageBubbleUser:   "#4A90E2",
	MessageBubbleAI:     "#2A2A2A",
	Primary:             "#4A90E2",
	Secondary:           "#32D74B",
	Accent:              "#5E5CE6",
	IconActive:          "#4A90E2",
	IconInactive:        "#666666",
	HeaderBackground:    "#2A2A2A",
	Border:              "#E0E0E0",
	CodeBlockBackground: "#1E1E1E",
	LoadingText:         "#FFFFFF",
}

// Palette returns the palette for a theme mode, defaulting to light.
func Palette(mode string) Colors {
	if mode == "dark" {
		return darkColors
	}
	return lightColors
}
