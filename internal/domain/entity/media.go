package entity

const (
	MediaImage = "image"
	MediaVideo = "video"
	MediaTour  = "virtual_tour"
)

type Media struct {
	ID           string `json:"id" db:"id"`
	ListingID    string `json:"listing_id" db:"listing_id"`
	URL          string `json:"url" db:"url"`
	MediaType    string `json:"media_type" db:"media_type"`
	Caption      string `json:"caption" db:"caption"`
	DisplayOrder int    `json:"display_order" db:"display_order"`
}
