package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MatejBursik/Shader-window/internal/effect"
	"github.com/MatejBursik/Shader-window/internal/input"
	"github.com/MatejBursik/Shader-window/internal/platform"
)

// aboutLayout stacks a title, text lines and a trailing button with fixed
// padding. Objects are laid out top to bottom in the order given.
type aboutLayout struct {
	width         float32
	height        float32
	topPadding    float32
	bottomPadding float32
	spacing       float32
}

func (l *aboutLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if len(objects) < 2 {
		return
	}
	currentY := l.topPadding

	title := objects[0]
	titleSize := fyne.NewSize(l.width-40, 25)
	title.Resize(titleSize)
	title.Move(fyne.NewPos((l.width-titleSize.Width)/2, currentY))
	currentY += titleSize.Height + l.spacing

	const lineSpacing = 4
	for _, line := range objects[1 : len(objects)-1] {
		lineSize := fyne.NewSize(l.width-40, 18)
		line.Resize(lineSize)
		line.Move(fyne.NewPos(20, currentY))
		currentY += lineSize.Height + lineSpacing
	}

	button := objects[len(objects)-1]
	buttonSize := button.MinSize()
	if buttonSize.Width > l.width-40 {
		buttonSize.Width = l.width - 40
	}
	button.Resize(buttonSize)
	button.Move(fyne.NewPos((l.width-buttonSize.Width)/2, l.height-l.bottomPadding-buttonSize.Height))
}

func (l *aboutLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(l.width, l.height)
}

// parseColor parses a #RRGGBB string. Anything else is black.
func parseColor(hex string) color.Color {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b uint8
	if len(hex) == 6 {
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.Black
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// aboutLines is the text body of the about window: key bindings, then the
// effect ring, then the gallery folder.
func aboutLines(keymap input.Keymap, galleryDir string) []string {
	title := cases.Title(language.English)
	var lines []string
	for _, b := range keymap {
		lines = append(lines, fmt.Sprintf("%-16s %s", b.Help, title.String(strings.ReplaceAll(string(b.Command), "_", " "))))
	}
	lines = append(lines, fmt.Sprintf("%-16s %s", "Escape", "Quit"))

	var names []string
	for _, e := range effect.All() {
		names = append(names, e.String())
	}
	lines = append(lines, "", "Effects: "+strings.Join(names, " > "))
	if galleryDir != "" {
		lines = append(lines, "Gallery: "+galleryDir)
	}
	lines = append(lines, COPYRIGHT_TEXT)
	return lines
}

// runAboutWindow shows the key bindings and effects in a small fixed-size
// window. The button opens galleryDir in the file manager.
func runAboutWindow(galleryDir string) {
	aboutApp := app.New()
	aboutWindow := aboutApp.NewWindow(ABOUT_WINDOW_TITLE)
	windowWidth := float32(420)
	windowHeight := float32(320)
	aboutWindow.Resize(fyne.NewSize(windowWidth, windowHeight))
	aboutWindow.SetFixedSize(true)
	aboutWindow.CenterOnScreen()

	aboutTextColor := parseColor(ABOUT_TEXT_COLOR)
	infoTextColor := parseColor(INFO_TEXT_COLOR)

	title := canvas.NewText(APP_NAME+" "+APP_VERSION, aboutTextColor)
	title.Alignment = fyne.TextAlignCenter
	title.TextSize = float32(ABOUT_TEXT_FONT_SIZE + 2)
	title.TextStyle = fyne.TextStyle{Bold: true}

	objects := []fyne.CanvasObject{container.NewCenter(title)}
	for _, line := range aboutLines(input.DefaultKeymap(), galleryDir) {
		text := canvas.NewText(line, infoTextColor)
		text.TextSize = float32(ABOUT_TEXT_FONT_SIZE)
		text.TextStyle = fyne.TextStyle{Monospace: true}
		objects = append(objects, text)
	}

	openButton := widget.NewButton(OPEN_GALLERY_TEXT, func() {
		if galleryDir == "" {
			log.Printf("No gallery folder configured")
			return
		}
		if err := platform.OpenPath(galleryDir); err != nil {
			log.Printf("Error opening gallery folder: %v", err)
		}
	})
	openButton.Importance = widget.HighImportance
	objects = append(objects, openButton)

	content := container.New(&aboutLayout{
		width:         windowWidth,
		height:        windowHeight,
		topPadding:    12,
		bottomPadding: 15,
		spacing:       12,
	}, objects...)

	background := canvas.NewRectangle(parseColor(WINDOW_BACKGROUND_COLOR))
	background.Resize(fyne.NewSize(windowWidth, windowHeight))

	aboutWindow.SetContent(container.NewStack(background, content))
	aboutWindow.Resize(fyne.NewSize(windowWidth, windowHeight))
	aboutWindow.ShowAndRun()
}
