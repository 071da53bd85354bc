package willowgui

import "fmt"

// Sizes holds the fixed metrics shared by all widgets.
type Sizes struct {
	// Margin is the gap a Placer leaves between widgets.
	Margin            float64 `yaml:"margin"`
	ScrollBarWidth    float64 `yaml:"scroll_bar_width"`
	ResizeThumbWidth  float64 `yaml:"resize_thumb_width"`
	ResizeThumbHeight float64 `yaml:"resize_thumb_height"`
}

// minScrollBarWidth leaves room for the thumb inset on both sides.
const minScrollBarWidth = 2*scrollThumbInset + 1

func (s Sizes) validate() error {
	if s.Margin < 0 {
		return fmt.Errorf("willowgui: invalid margin %v", s.Margin)
	}
	if s.ScrollBarWidth < minScrollBarWidth {
		return fmt.Errorf("willowgui: scroll_bar_width %v is below %v", s.ScrollBarWidth, minScrollBarWidth)
	}
	if s.ResizeThumbWidth <= 0 || s.ResizeThumbHeight <= 0 {
		return fmt.Errorf("willowgui: invalid resize thumb size %vx%v", s.ResizeThumbWidth, s.ResizeThumbHeight)
	}
	return nil
}

// DefaultSizes returns the built-in metrics.
func DefaultSizes() Sizes {
	return Sizes{
		Margin:            4,
		ScrollBarWidth:    12,
		ResizeThumbWidth:  16,
		ResizeThumbHeight: 16,
	}
}

// Theme is the widget palette.
type Theme struct {
	Button            Color `yaml:"button"`
	ButtonHighlight   Color `yaml:"button_highlight"`
	ButtonFrame       Color `yaml:"button_frame"`
	CheckBox          Color `yaml:"check_box"`
	CheckMark         Color `yaml:"check_mark"`
	SliderBg          Color `yaml:"slider_bg"`
	SliderFrame       Color `yaml:"slider_frame"`
	TextBoxBg         Color `yaml:"text_box_bg"`
	ScrollBarBg       Color `yaml:"scroll_bar_bg"`
	ScrollBarThumb    Color `yaml:"scroll_bar_thumb"`
	WindowBg          Color `yaml:"window_bg"`
	WindowFrame       Color `yaml:"window_frame"`
	WindowTitleBarBg  Color `yaml:"window_title_bar_bg"`
	WindowResizeThumb Color `yaml:"window_resize_thumb"`
	Text              Color `yaml:"text"`
}

// DefaultTheme returns the built-in dark blue palette.
func DefaultTheme() Theme {
	return Theme{
		Button:            MustHexColor("#254873"),
		ButtonHighlight:   MustHexColor("#4a90d6"),
		ButtonFrame:       MustHexColor("#0f87f9"),
		CheckBox:          MustHexColor("#254873"),
		CheckMark:         MustHexColor("#4296f9"),
		SliderBg:          MustHexColor("#254873"),
		SliderFrame:       MustHexColor("#4a5b7a"),
		TextBoxBg:         MustHexColor("#2a2d37"),
		ScrollBarBg:       MustHexColor("#4a5b7a"),
		ScrollBarThumb:    MustHexColor("#0f87f9"),
		WindowBg:          MustHexColor("#151617"),
		WindowFrame:       MustHexColor("#4b5b7e"),
		WindowTitleBarBg:  MustHexColor("#27497c"),
		WindowResizeThumb: MustHexColor("#0f87f9"),
		Text:              ColorWhite,
	}
}
