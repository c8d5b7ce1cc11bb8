package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"looncamp-backend/models"

	"gorm.io/datatypes"
)

// StringList is a free-text list field. On the wire it is either a JSON array
// of strings or a string holding one; both decode to the same value.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			*l = StringList{}
			return nil
		}
		data = []byte(raw)
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return invalid("list fields must be a JSON array of strings")
	}
	if items == nil {
		items = []string{}
	}
	*l = items
	return nil
}

func encodeList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

func decodeList(raw datatypes.JSON) []string {
	out := []string{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// PropertyInput is the create payload.
type PropertyInput struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Location     string     `json:"location"`
	Rating       *float64   `json:"rating"`
	Price        string     `json:"price"`
	PriceNote    string     `json:"price_note"`
	Capacity     int        `json:"capacity"`
	CheckInTime  string     `json:"check_in_time"`
	CheckOutTime string     `json:"check_out_time"`
	Status       string     `json:"status"`
	IsTopSelling *bool      `json:"is_top_selling"`
	IsActive     *bool      `json:"is_active"`
	IsAvailable  *bool      `json:"is_available"`
	Contact      string     `json:"contact"`
	OwnerMobile  string     `json:"owner_mobile"`
	MapLink      string     `json:"map_link"`
	Amenities    StringList `json:"amenities"`
	Activities   StringList `json:"activities"`
	Highlights   StringList `json:"highlights"`
	Policies     StringList `json:"policies"`
	Images       []string   `json:"images"`
}

// PropertyPatch is the update payload. A nil field was absent from the
// request and is left untouched.
type PropertyPatch struct {
	Title        *string     `json:"title"`
	Description  *string     `json:"description"`
	Category     *string     `json:"category"`
	Location     *string     `json:"location"`
	Rating       *float64    `json:"rating"`
	Price        *string     `json:"price"`
	PriceNote    *string     `json:"price_note"`
	Capacity     *int        `json:"capacity"`
	CheckInTime  *string     `json:"check_in_time"`
	CheckOutTime *string     `json:"check_out_time"`
	Status       *string     `json:"status"`
	IsTopSelling *bool       `json:"is_top_selling"`
	IsActive     *bool       `json:"is_active"`
	IsAvailable  *bool       `json:"is_available"`
	Contact      *string     `json:"contact"`
	OwnerMobile  *string     `json:"owner_mobile"`
	MapLink      *string     `json:"map_link"`
	Amenities    *StringList `json:"amenities"`
	Activities   *StringList `json:"activities"`
	Highlights   *StringList `json:"highlights"`
	Policies     *StringList `json:"policies"`
	Images       *[]string   `json:"images"`
}

// Property is a catalog entry as returned to clients.
type Property struct {
	models.Property
	Amenities  []string               `json:"amenities"`
	Activities []string               `json:"activities"`
	Highlights []string               `json:"highlights"`
	Policies   []string               `json:"policies"`
	Images     []models.PropertyImage `json:"images"`
}

func newProperty(row models.Property) Property {
	images := row.Images
	if images == nil {
		images = []models.PropertyImage{}
	}
	row.Images = nil
	return Property{
		Property:   row,
		Amenities:  decodeList(row.Amenities),
		Activities: decodeList(row.Activities),
		Highlights: decodeList(row.Highlights),
		Policies:   decodeList(row.Policies),
		Images:     images,
	}
}

// CreatedProperty is what Create hands back.
type CreatedProperty struct {
	ID   uint   `json:"id"`
	Slug string `json:"slug"`
}

func validCategory(category string) bool {
	for _, c := range models.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func validStatus(status string) bool {
	switch status {
	case models.StatusVerified, models.StatusPending, models.StatusUnverified:
		return true
	}
	return false
}

func validateRating(rating *float64) error {
	if rating != nil && (*rating < 0 || *rating > 5) {
		return invalid("rating must be between 0 and 5")
	}
	return nil
}

// cleanImages trims each URL and rejects blank ones, so display order always
// matches the supplied index.
func cleanImages(urls []string) ([]string, error) {
	out := make([]string, len(urls))
	for i, u := range urls {
		if out[i] = strings.TrimSpace(u); out[i] == "" {
			return nil, invalid("image %d has an empty URL", i+1)
		}
	}
	return out, nil
}

func (in PropertyInput) validate() error {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.Price) == "" ||
		strings.TrimSpace(in.PriceNote) == "" ||
		in.Capacity == 0 {
		return invalid("Missing required fields.")
	}
	if in.Capacity < 0 {
		return invalid("capacity must be a positive number")
	}
	if !validCategory(in.Category) {
		return invalid("category must be one of camping, cottage, villa")
	}
	if in.Status != "" && !validStatus(in.Status) {
		return invalid("status must be one of Verified, Pending, Unverified")
	}
	if Slugify(in.Title) == "" {
		return invalid("title must contain at least one letter or digit")
	}
	return validateRating(in.Rating)
}

// columns turns the patch into the column -> value map for the UPDATE. Every
// key is a fixed column name; nothing from the request becomes a column.
func (p PropertyPatch) columns() (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		slug := Slugify(title)
		if slug == "" {
			return nil, invalid("title must contain at least one letter or digit")
		}
		updates["title"] = title
		updates["slug"] = slug
	}
	if p.Category != nil {
		if !validCategory(*p.Category) {
			return nil, invalid("category must be one of camping, cottage, villa")
		}
		updates["category"] = *p.Category
	}
	if p.Status != nil {
		if !validStatus(*p.Status) {
			return nil, invalid("status must be one of Verified, Pending, Unverified")
		}
		updates["status"] = *p.Status
	}
	if p.Rating != nil {
		if err := validateRating(p.Rating); err != nil {
			return nil, err
		}
		updates["rating"] = *p.Rating
	}
	if p.Capacity != nil {
		if *p.Capacity <= 0 {
			return nil, invalid("capacity must be a positive number")
		}
		updates["capacity"] = *p.Capacity
	}

	setString := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}
	setString("description", p.Description)
	setString("location", p.Location)
	setString("price", p.Price)
	setString("price_note", p.PriceNote)
	setString("check_in_time", p.CheckInTime)
	setString("check_out_time", p.CheckOutTime)
	setString("contact", p.Contact)
	setString("owner_mobile", p.OwnerMobile)
	setString("map_link", p.MapLink)

	setBool := func(column string, v *bool) {
		if v != nil {
			updates[column] = *v
		}
	}
	setBool("is_top_selling", p.IsTopSelling)
	setBool("is_active", p.IsActive)
	setBool("is_available", p.IsAvailable)

	setList := func(column string, v *StringList) {
		if v != nil {
			updates[column] = encodeList(*v)
		}
	}
	setList("amenities", p.Amenities)
	setList("activities", p.Activities)
	setList("highlights", p.Highlights)
	setList("policies", p.Policies)

	return updates, nil
}
