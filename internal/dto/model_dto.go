package dto

type ModelDefault struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

type ModelCatalogResponse struct {
	Providers map[string][]string `json:"providers"`
	Default   ModelDefault        `json:"default"`
}
