package admin

// Stats es el resumen del dashboard.
type Stats struct {
	TotalKittens     int `json:"totalKittens"`
	AvailableKittens int `json:"availableKittens"`
	Breeds           int `json:"breeds"`
	Inquiries        int `json:"inquiries"`
}

// KittenInput es el formulario completo de alta/edición.
type KittenInput struct {
	Name           string
	Breed          string
	Gender         string
	AgeWeeks       int
	Price          float64
	Description    string
	IsAvailable    bool
	ExtraImageURLs []string
}

type BreedInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TestimonialInput struct {
	Name       string `json:"name"`
	Location   string `json:"location"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
	Avatar     string `json:"avatar"`
	KittenName string `json:"kittenName"`
}
