package domain

// Image references an externally hosted placeholder photo. Images are never
// updated or deleted once created.
type Image struct {
	Id            string `json:"id"`
	Url           string `json:"url"`
	CreatedByName string `json:"createdByName"`
}
