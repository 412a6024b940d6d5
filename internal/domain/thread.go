package domain

// Thread is a single commented pin anchored to one image. Coordinates are
// conventionally normalized to [0,1] but the server stores them as given;
// clamping, if any, happens client-side.
type Thread struct {
	Id            string  `json:"id"`
	ImageId       string  `json:"imageId"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Comment       string  `json:"comment"`
	CreatedByName string  `json:"createdByName"`
}

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	ImageId   string
	X         float64
	Y         float64
	Comment   string
	CreatedBy string
}
