package dto

// ProductInput carries the operator's raw text for add and update. Price and
// Stock are converted by the use case so that bad numbers surface as
// validation errors.
type ProductInput struct {
	ID    string
	Name  string
	Price string
	Stock string
}
