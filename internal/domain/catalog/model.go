package catalog

// Gender define el sexo del gatito.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Kitten es la proyección lista para mostrar de una fila de kittens.
type Kitten struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Breed          string   `json:"breed"` // texto libre, se matchea contra Breed.Name
	Gender         Gender   `json:"gender"`
	AgeWeeks       int      `json:"ageWeeks"`
	Price          float64  `json:"price"`
	Description    string   `json:"description"`
	MainImageURL   string   `json:"mainImageUrl"`
	ExtraImageURLs []string `json:"extraImageUrls"` // nunca nil
	IsAvailable    bool     `json:"isAvailable"`
}

type Breed struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"` // "" si falta
}

// Testimonial: Avatar y KittenName son null explícito cuando faltan.
type Testimonial struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	Rating     int     `json:"rating"`
	Text       string  `json:"text"`
	Avatar     *string `json:"avatar"`
	KittenName *string `json:"kittenName"`
}

// BreedSummary es la fila del listado de razas del back-office.
type BreedSummary struct {
	Breed
	KittenCount    int `json:"kittenCount"`
	AvailableCount int `json:"availableCount"`
}
