package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validTemplate() Template {
	return Template{
		Name:   "Social Media Post",
		Width:  1080,
		Height: 1080,
		Fields: []Field{
			{Key: "headline", Label: "Headline", Type: "text", MaxLen: 48, Align: "center"},
			{Key: "subhead", Label: "Subhead", Type: "text", MaxLen: 80},
			{Key: "cta", Label: "Call to Action", Type: "text", MaxLen: 18},
			{Key: "photo", Label: "Product Photo", Type: "image"},
		},
		DefaultValues: map[string]string{"headline": "Your Amazing Product"},
	}
}

func TestValidateTemplate_OK(t *testing.T) {
	tpl := validTemplate()
	require.NoError(t, ValidateTemplate(&tpl))
}

func TestValidateTemplate_CanvasBounds(t *testing.T) {
	tpl := validTemplate()
	tpl.Width = 99
	require.Error(t, ValidateTemplate(&tpl))

	tpl = validTemplate()
	tpl.Height = 4001
	require.Error(t, ValidateTemplate(&tpl))
}

func TestValidateTemplate_DuplicateFieldKey(t *testing.T) {
	tpl := validTemplate()
	tpl.Fields = append(tpl.Fields, Field{Key: "headline", Label: "Again", Type: "text"})
	require.Error(t, ValidateTemplate(&tpl))
}

func TestValidateTemplate_DefaultForUndeclaredField(t *testing.T) {
	tpl := validTemplate()
	tpl.DefaultValues["ghost"] = "boo"
	require.Error(t, ValidateTemplate(&tpl))
}

func TestValidateTemplate_MaxLenOnlyForText(t *testing.T) {
	tpl := validTemplate()
	tpl.Fields[3].MaxLen = 10 // photo is an image field
	require.Error(t, ValidateTemplate(&tpl))
}

func TestValidateTemplate_BadFieldType(t *testing.T) {
	tpl := validTemplate()
	tpl.Fields[0].Type = "video"
	require.Error(t, ValidateTemplate(&tpl))
}

func TestValidateBrandKit(t *testing.T) {
	kit := BrandKit{Name: "Acme", PrimaryColor: "#112233", SecondaryColor: "#FFEEDD"}
	require.NoError(t, ValidateBrandKit(&kit))

	kit.PrimaryColor = "112233"
	require.Error(t, ValidateBrandKit(&kit))

	kit = BrandKit{Name: "", PrimaryColor: "#112233", SecondaryColor: "#ffeedd"}
	require.Error(t, ValidateBrandKit(&kit))

	kit = BrandKit{Name: "Acme", PrimaryColor: "#11223g", SecondaryColor: "#ffeedd"}
	require.Error(t, ValidateBrandKit(&kit))
}
