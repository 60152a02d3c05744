package services

import "github.com/apetrenko/contentgen/internal/api"

// OptionsService serves the static generation parameter lists.
type OptionsService struct{}

func NewOptionsService() *OptionsService {
	return &OptionsService{}
}

func (s *OptionsService) Languages() []api.Option {
	return []api.Option{
		{Code: "en", Label: "English"},
		{Code: "es", Label: "Spanish"},
		{Code: "fr", Label: "French"},
		{Code: "de", Label: "German"},
		{Code: "it", Label: "Italian"},
		{Code: "pt", Label: "Portuguese"},
		{Code: "ru", Label: "Russian"},
		{Code: "ja", Label: "Japanese"},
		{Code: "zh", Label: "Chinese"},
	}
}

func (s *OptionsService) Tones() []api.Option {
	return []api.Option{
		{Code: "professional", Label: "Professional"},
		{Code: "casual", Label: "Casual"},
		{Code: "friendly", Label: "Friendly"},
		{Code: "formal", Label: "Formal"},
		{Code: "humorous", Label: "Humorous"},
		{Code: "persuasive", Label: "Persuasive"},
		{Code: "informative", Label: "Informative"},
	}
}
