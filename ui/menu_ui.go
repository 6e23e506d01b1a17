package ui

import (
	"bytes"
	"image/color"
	"strings"

	cfg "github.com/automoto/dancing-bear/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnSelectScene func(name string)
	OnExit        func()

	// Scene offered by the Continue button, "" hides it
	lastScene string

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu. lastScene adds a Continue button when set.
func NewMenuUI(lastScene string, onSelectScene func(name string), onExit func()) *MenuUI {
	mui := &MenuUI{
		OnSelectScene: onSelectScene,
		OnExit:        onExit,
		lastScene:     lastScene,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: bold,
		Size:   36,
	}
	mui.normalFace = &text.GoTextFace{
		Source: regular,
		Size:   18,
	}
	mui.smallFace = &text.GoTextFace{
		Source: regular,
		Size:   13,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	if mui.lastScene != "" {
		contentContainer.AddChild(mui.sceneButton("Continue: "+sceneLabel(mui.lastScene), mui.lastScene))
	}
	contentContainer.AddChild(mui.sceneButton("Orbit", cfg.SceneOrbit))
	contentContainer.AddChild(mui.sceneButton("Fireworks", cfg.SceneFireworks))
	contentContainer.AddChild(mui.button("Exit", func() {
		if mui.OnExit != nil {
			mui.OnExit()
		}
	}))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("1: Orbit   2: Fireworks   F: Fullscreen   Esc: Exit", &mui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.HintColor,
		}),
	))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) sceneButton(label, scene string) *widget.Button {
	return mui.button(label, func() {
		if mui.OnSelectScene != nil {
			mui.OnSelectScene(scene)
		}
	})
}

func (mui *MenuUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.TextColor,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// sceneLabel turns a scene name into a button caption.
func sceneLabel(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Update runs the ebitenui input and layout pass.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
