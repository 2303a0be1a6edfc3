package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyChunk(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    ChunkType
	}{
		{
			"product description",
			"VALENOVA is a sophisticated modular seating system available in multiple configurations. " +
				"Features premium leather upholstery in black, brown, and natural finishes. " +
				"Dimensions: 180×90×75 cm. Designed for modern living spaces.",
			TypeProductDescription,
		},
		{
			"technical specs",
			"Technical Specifications:\n• Material: High-grade aluminum alloy\n• Weight capacity: 150 kg\n" +
				"• Dimensions: 200×100×80 mm\n• Resistance: IP65 rated\n• Compliance: ISO 9001 certified",
			TypeTechnicalSpecs,
		},
		{
			"visual showcase",
			"The visual showcase presents a stunning moodboard featuring warm earth tones and natural " +
				"textures. See image gallery for detailed product photography showcasing the aesthetic " +
				"appeal and finish quality.",
			TypeVisualShowcase,
		},
		{
			"designer story",
			"Designer Maria Santos from ESTUDI{H}AC brings her minimalist philosophy to this collection. " +
				"Inspired by Scandinavian design principles and sustainable living, the creative process " +
				"focused on functionality and timeless appeal.",
			TypeDesignerStory,
		},
		{
			"collection overview",
			"The HARMONY Collection presents 15 innovative products featuring contemporary design " +
				"elements. This comprehensive line includes seating, tables, and storage solutions " +
				"unified by clean lines and premium materials.",
			TypeCollectionOverview,
		},
		{
			"table of contents",
			"Table of Contents\n1. Introduction ........................... 3\n" +
				"2. Product Overview ...................... 5\n3. Technical Specifications .............. 12",
			TypeIndexContent,
		},
		{
			"sustainability info",
			"Our commitment to sustainability includes using 100% recycled materials, carbon-neutral " +
				"manufacturing processes, and biodegradable packaging. All products are certified " +
				"eco-friendly and support responsible sourcing.",
			TypeSustainabilityInfo,
		},
		{
			"certification info",
			"Quality Assurance: All products meet ISO 9001 standards and are CE marked for European " +
				"compliance. Tested according to ANSI/BIFMA standards for commercial furniture applications.",
			TypeCertificationInfo,
		},
		{
			"supporting content",
			"Welcome to our comprehensive catalog showcasing innovative design solutions for modern " +
				"workspaces. This document provides detailed information about our product offerings and services.",
			TypeSupportingContent,
		},
		{
			"too short",
			"Short text",
			TypeUnclassified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyChunk(tt.content)
			assert.Equal(t, tt.want, got.Type)
			assert.GreaterOrEqual(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
			assert.NotEmpty(t, got.Reasoning)
		})
	}
}

func TestClassifyChunk_DesignerStoryBeatsSustainability(t *testing.T) {
	// A designer narrative that mentions sustainable living is still a
	// designer story; rule order is part of the contract.
	got := ClassifyChunk("Designer John Smith from Creative Studio shaped this line around a " +
		"philosophy of sustainable living and honest natural materials, inspired by Japanese joinery.")
	assert.Equal(t, TypeDesignerStory, got.Type)
}

func TestClassifyChunks_PreservesOrder(t *testing.T) {
	contents := []string{
		"Short text",
		"Table of Contents\n1. Introduction ........................... 3\n2. Products .............. 5",
	}
	got := ClassifyChunks(contents)
	assert.Len(t, got, 2)
	assert.Equal(t, TypeUnclassified, got[0].Type)
	assert.Equal(t, TypeIndexContent, got[1].Type)
}
