package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Sample chunks from the HARMONY catalog.
const indexChunk = `###### 24 − 25

Stacy Garcia NY
Estudi{H}ac
Dsignio
ALT Design
Mut
Yonoh

-----

**INDEX**

_Signature book_

_Sustainability_ _‒ Sostenibilidad_

_Quality certifications_ _‒ Certificados de calidad_

_VALENOVA_ _‒ VALENOVA_

_PIQUÉ_ _‒ PIQUÉ_`

const sustainabilityChunk = `-----

**Sostenibilidad**

_Medioambiental y social_

**RENDIMIENTO MEDIOAMBIENTAL**
El respeto por el entorno y el compromiso con la sostenibilidad son
fundamentales para HARMONY. Buscamos que nuestros productos sean
respetuosos con el medio ambiente y contribuyan a la construcción
sostenible.`

const certificationChunk = `Quality certifications

Certificados de calidad

Quality management system in compliance with UNE-EN ISO 9001:2015,
and with UNE-EN ISO 14001:2015, both audited yearly by outside bodies.`

const valenovaChunk = `39661  VALENOVA TAUPE LT/11,8X11,8
Q59 (11,8x11,8 cm − 4[5/8]x4[5/8]")

12 patterns · ** 43 Kerakoll


39660  VALENOVA SAND LT/11,8X11,8
Q59 (11,8x11,8 cm − 4[5/8]x4[5/8]")


39659  VALENOVA CLAY LT/11,8X11,8
Q59 (11,8x11,8 cm − 4[5/8]x4[5/8]")

12 patterns · ** 43 Kerakoll


39658  VALENOVA WHITE LT/11,8X11,8
Q59 (11,8x11,8 cm − 4[5/8]x4[5/8]")

12 patterns · ** 1 Kerakoll

by Stacy Garcia NY`

const piqueChunk = `-----

PIQUÉ
by Estudi{H}ac


PIQUÉ, a new collection for HARMONY by José Manuel Ferrero from design studio estudi{H}ac, is
inspired by an 18th century mechanized technique for weaving double cloth with a raised pattern.
The collection features ceramic tiles with a distinctive textured surface that mimics the piqué fabric technique.`

const linsChunk = `-----

LINS MINT LINS NAVY

-----

21716 LINS WHITE
Q7 (20x20 cm − 7[7/8]x7[7/8]")

*** 4 patterns · * 100 Mapei


31688 LINS BORDEAUX
Q7 (20x20 cm − 7[7/8]x7[7/8]")

*** 4 patterns · **143 Kerakoll

by YONOH`

func TestValidator_IsValid(t *testing.T) {
	v := NewValidator(DefaultTables())

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"index page", indexChunk, false},
		{"sustainability boilerplate", sustainabilityChunk, false},
		{"certification page", certificationChunk, false},
		{"valenova product", valenovaChunk, true},
		{"pique product", piqueChunk, true},
		{"lins product", linsChunk, true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsValid(tt.content))
		})
	}
}

func TestValidator_ShortContent(t *testing.T) {
	v := NewValidator(DefaultTables())

	// Anything under 100 characters is rejected, product signals or not.
	assert.False(t, v.IsValid("VALENOVA 20×20 cm by YONOH"))
	assert.False(t, v.IsValid("x"))
}

func TestValidator_IndexKeywordWinsOverSignals(t *testing.T) {
	v := NewValidator(DefaultTables())

	content := "TABLE OF CONTENTS for the ceramic collection, with designer credits, " +
		"dimensions in cm and mm for every tile listed across one hundred pages."
	assert.False(t, v.IsValid(content))
}

func TestValidator_MixedSustainabilityKept(t *testing.T) {
	v := NewValidator(DefaultTables())

	// Sustainability wording mixed with real product signals is accepted.
	content := "Our sustainability approach shapes every collection: each designer " +
		"works with recycled clay bodies, and every tile is pressed at 20x20 cm " +
		"format before firing in efficient kilns."
	assert.True(t, v.IsValid(content))
}

func TestValidator_ScoreThreshold(t *testing.T) {
	v := NewValidator(DefaultTables())

	// One indicator only (uppercase token): rejected.
	oneIndicator := "HARMONY makes beautiful things for beautiful homes and gardens, " +
		"loved by families everywhere for decades of quiet reliable service."
	assert.False(t, v.IsValid(oneIndicator))

	// Uppercase token plus dimension marker: accepted.
	twoIndicators := "HARMONY produces a range of surfaces for walls and floors, " +
		"with standard formats from 20x20 cm up to large slabs for facades."
	assert.True(t, v.IsValid(twoIndicators))
}

func TestValidator_CustomTables(t *testing.T) {
	tables := DefaultTables()
	tables.IndexKeywords = append(tables.IndexKeywords, "inhaltsverzeichnis")
	v := NewValidator(tables)

	content := "Inhaltsverzeichnis der Kollektion mit allen Designern, " +
		"Formaten in cm und mm sowie Seitenzahlen für jede einzelne Serie im Katalog."
	assert.False(t, v.IsValid(content))
}

func TestIsValidProductChunk_Idempotent(t *testing.T) {
	first := IsValidProductChunk(valenovaChunk)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, IsValidProductChunk(valenovaChunk))
	}
	assert.True(t, first)
}
