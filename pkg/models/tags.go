package models

import (
	"hash/fnv"
	"strings"
)

// ChipPalette provides the background colors used for tag chips.
// These colors are chosen for good contrast against white text.
var ChipPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#34495e", // dark gray
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#8e44ad", // dark purple
	"#d35400", // pumpkin
	"#27ae60", // nephritis
	"#2980b9", // belize hole
	"#c0392b", // pomegranate
}

// ChipColor returns a stable palette color for a tag value, so the same
// tag looks the same in every row
func ChipColor(tag string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(tag))))
	return ChipPalette[int(h.Sum32()%uint32(len(ChipPalette)))]
}
