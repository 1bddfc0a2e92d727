package assets

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprite names understood by LoadImage.
const (
	SpriteSpace      = "space"
	SpriteBlack      = "black_piece"
	SpriteWhite      = "white_piece"
	SpriteAnchor     = "anchor_ring"
	SpriteSelectable = "selectable_ring"
	SpriteSelected   = "selected_ring"
)

var (
	SpaceColor      = color.RGBA{0x6b, 0x4a, 0x2f, 0xff}
	BlackColor      = color.RGBA{0x1c, 0x1c, 0x22, 0xff}
	WhiteColor      = color.RGBA{0xee, 0xea, 0xe0, 0xff}
	AnchorColor     = color.RGBA{0xff, 0xc8, 0x3c, 0xff}
	SelectableColor = color.RGBA{0x5c, 0xd6, 0x5c, 0xff}
	SelectedColor   = color.RGBA{0x3c, 0x9c, 0xff, 0xff}
)

var (
	mu      sync.Mutex
	sprites = map[string]*ebiten.Image{}
)

// LoadImage 按名称返回预先绘制好的贴图，diameter 为像素直径。
// 贴图按 (name, diameter) 缓存，只画一次。
func LoadImage(name string, diameter int) (*ebiten.Image, error) {
	key := fmt.Sprintf("%s@%d", name, diameter)
	mu.Lock()
	defer mu.Unlock()
	if img, ok := sprites[key]; ok {
		return img, nil
	}

	img := ebiten.NewImage(diameter, diameter)
	c := float32(diameter) / 2
	switch name {
	case SpriteSpace:
		vector.DrawFilledCircle(img, c, c, c*0.82, SpaceColor, true)
	case SpriteBlack:
		vector.DrawFilledCircle(img, c, c, c*0.9, BlackColor, true)
		vector.DrawFilledCircle(img, c*0.8, c*0.8, c*0.25, color.RGBA{0x55, 0x55, 0x60, 0xff}, true)
	case SpriteWhite:
		vector.DrawFilledCircle(img, c, c, c*0.9, WhiteColor, true)
		vector.DrawFilledCircle(img, c*0.8, c*0.8, c*0.25, color.White, true)
	case SpriteAnchor:
		vector.StrokeCircle(img, c, c, c*0.92, 4, AnchorColor, true)
	case SpriteSelectable:
		vector.StrokeCircle(img, c, c, c*0.92, 3, SelectableColor, true)
	case SpriteSelected:
		vector.StrokeCircle(img, c, c, c*0.92, 4, SelectedColor, true)
	default:
		img.Dispose()
		return nil, fmt.Errorf("未知贴图 %s", name)
	}
	sprites[key] = img
	return img, nil
}
