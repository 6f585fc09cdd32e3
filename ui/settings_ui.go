package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/sphereballs/components"
	cfg "github.com/automoto/sphereballs/config"
	"github.com/automoto/sphereballs/fonts"
	"github.com/automoto/sphereballs/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SettingsUI holds the ebitenui interface for the settings screen
type SettingsUI struct {
	UI    *ebitenui.UI
	Menu  *components.SettingsMenuData
	Prefs *components.PreferencesData

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// what the current widget tree shows
	built     bool
	shownPref components.PreferencesData
	shownSel  components.SettingsMenuOption
}

// NewSettingsUI creates the settings screen. Clicking Back sets Menu.Leave.
func NewSettingsUI(menu *components.SettingsMenuData, prefs *components.PreferencesData) (*SettingsUI, error) {
	sui := &SettingsUI{Menu: menu, Prefs: prefs}
	if err := sui.loadFonts(); err != nil {
		return nil, err
	}
	sui.buildUI()
	return sui, nil
}

func (sui *SettingsUI) loadFonts() error {
	var err error
	if sui.titleFace, err = fonts.UIFace(cfg.UI.TitleFontSize); err != nil {
		return err
	}
	if sui.normalFace, err = fonts.UIFace(cfg.UI.NormalFontSize); err != nil {
		return err
	}
	if sui.smallFace, err = fonts.UIFace(cfg.UI.SmallFontSize); err != nil {
		return err
	}
	return nil
}

func (sui *SettingsUI) buildUI() {
	theme := cfg.ThemeFor(sui.Prefs.DarkMode)

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(theme.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Settings.Title, &sui.titleFace, &widget.LabelColor{
			Idle: theme.Text,
		}),
	))

	contentContainer.AddChild(sui.buildSection("Appearance", theme,
		components.SettingsOptColor, components.SettingsOptSize, components.SettingsOptDarkMode))
	contentContainer.AddChild(sui.buildSection("App", theme,
		components.SettingsOptResetOnboarding, components.SettingsOptResetAll))
	contentContainer.AddChild(sui.buildRow(components.SettingsOptBack, theme))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("Version %s", cfg.Settings.Version), &sui.smallFace, &widget.LabelColor{
			Idle: theme.TextMuted,
		}),
	))

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	sui.built = true
	sui.shownPref = *sui.Prefs
	sui.shownSel = sui.Menu.SelectedOption
}

func (sui *SettingsUI) buildSection(title string, theme cfg.Theme, opts ...components.SettingsMenuOption) *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}
	section := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(theme.Surface)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	section.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &sui.smallFace, &widget.LabelColor{Idle: theme.TextMuted}),
	))
	for _, opt := range opts {
		section.AddChild(sui.buildRow(opt, theme))
	}
	return section
}

func (sui *SettingsUI) buildRow(opt components.SettingsMenuOption, theme cfg.Theme) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	if opt == components.SettingsOptColor {
		row.AddChild(widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(sui.Prefs.BallColor.RGBA())),
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(28, 28)),
		))
	}

	label := systems.SettingLabel(opt)
	if v := systems.SettingValue(*sui.Prefs, opt); v != "" {
		label = fmt.Sprintf("%s: %s", label, v)
	}

	textColor := theme.Text
	if opt == components.SettingsOptResetAll {
		textColor = color.RGBA{R: 255, G: 59, B: 48, A: 255}
	}

	row.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(280, 40)),
		widget.ButtonOpts.Image(sui.buttonImage(theme, opt == sui.Menu.SelectedOption)),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    textColor,
			Hover:   textColor,
			Pressed: theme.TextMuted,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Menu.SelectedOption = opt
			if opt == components.SettingsOptBack {
				sui.Menu.Leave = true
				return
			}
			if systems.ApplySetting(sui.Prefs, opt, 1) {
				sui.Menu.Dirty = true
			}
		}),
	))
	return row
}

func (sui *SettingsUI) buttonImage(theme cfg.Theme, selected bool) *widget.ButtonImage {
	idle := theme.Surface
	if selected {
		idle = cfg.Mix(theme.Surface, theme.Selected, 0.25)
	}
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(idle),
		Hover:    image.NewNineSliceColor(cfg.Mix(theme.Surface, theme.Selected, 0.15)),
		Pressed:  image.NewNineSliceColor(cfg.Mix(theme.Surface, theme.Selected, 0.35)),
		Disabled: image.NewNineSliceColor(theme.Surface),
	}
}

// Update runs ebitenui and rebuilds the widgets when what they show changed.
func (sui *SettingsUI) Update() {
	if !sui.built || sui.shownPref != *sui.Prefs || sui.shownSel != sui.Menu.SelectedOption {
		sui.buildUI()
	}
	sui.UI.Update()
}
