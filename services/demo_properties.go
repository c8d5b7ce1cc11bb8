package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
)

// PopulateResult counts what Populate did with each input.
type PopulateResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Populate creates each input through the normal create path. Titles that
// already exist are skipped, so a second run changes nothing.
func (s *PropertyService) Populate(ctx context.Context, inputs []PropertyInput) (PopulateResult, error) {
	var result PopulateResult
	for _, in := range inputs {
		created, err := s.Create(ctx, in)
		switch {
		case errors.Is(err, ErrDuplicateTitle):
			log.Printf("↪️ skip %q: already in catalog", in.Title)
			result.Skipped++
		case err != nil:
			return result, fmt.Errorf("populate %q: %w", in.Title, err)
		default:
			log.Printf("✅ added %s (id=%d)", created.Slug, created.ID)
			result.Created++
		}
	}
	return result, nil
}

type demoProperty struct {
	title, price, priceNote, location, category string
	checkIn, description                        string
	capacity                                    int
	rating                                      float64
	amenities, highlights, activities, policies []string
}

func (d demoProperty) input() PropertyInput {
	rating := d.rating
	return PropertyInput{
		Title:        d.title,
		Description:  d.description,
		Category:     d.category,
		Location:     d.location,
		Rating:       &rating,
		Price:        d.price,
		PriceNote:    d.priceNote,
		Capacity:     d.capacity,
		CheckInTime:  d.checkIn,
		CheckOutTime: defaultCheckOutTime,
		Contact:      defaultContact,
		Amenities:    d.amenities,
		Activities:   d.activities,
		Highlights:   d.highlights,
		Policies:     d.policies,
		Images:       []string{"https://placehold.co/800x600?text=" + url.PathEscape(d.title)},
	}
}

// DemoProperties is the starter catalog: six Pawna camps, seven Pawna
// cottages and six Lonavala villas, each with a placeholder image.
func DemoProperties() []PropertyInput {
	const meal = "per person with meal"
	out := make([]PropertyInput, 0, len(demoCatalog))
	for _, d := range demoCatalog {
		if d.priceNote == "" {
			d.priceNote = meal
		}
		out = append(out, d.input())
	}
	return out
}

var demoCatalog = []demoProperty{
	// camping
	{
		title: "Pawna Riverside Glamping", price: "₹2,999", capacity: 4, rating: 4.7,
		category: "camping", location: "Pawna Lake", checkIn: "2:00 PM",
		description: "Experience ultimate glamping at Pawna River with DJ and riverfront views.",
		amenities:   []string{"Private Washroom", "DJ on Saturday", "Riverview", "Food Included", "Free Activities", "Bonfire", "Garden", "Music", "Liquor Bar"},
		highlights:  []string{"River views", "DJ performance", "Bonfire night", "Garden access"},
		activities:  []string{"Boating", "Bonfire", "Music", "Nature walks"},
		policies:    []string{"Free cancellation up to 7 days", "No refund within 3 days"},
	},
	{
		title: "CozyNest at Chavsar – Pawna Lake", price: "₹3,300", capacity: 4, rating: 4.5,
		category: "camping", location: "Pawna Lake", checkIn: "2:00 PM",
		description: "Cozy camping experience at Pawna with food included and lake access.",
		amenities:   []string{"Private Washroom", "Food Included", "Paid Boating", "Bonfire", "Lake Access"},
		highlights:  []string{"Lake access", "Paid boating", "Bonfire", "Food included"},
		activities:  []string{"Boating", "Bonfire", "Swimming", "Fishing"},
		policies:    []string{"Free cancellation up to 7 days", "50% refund 3-7 days"},
	},
	{
		title: "Lakeside Glamping Camp – Pawna Lake", price: "₹2,499", capacity: 4, rating: 4.8,
		category: "camping", location: "Pawna Lake", checkIn: "2:00 PM",
		description: "Exclusive glamping camp with stargazing and lake access.",
		amenities:   []string{"Canvas Tent", "Bonfire", "Stargazing", "Food Included", "Lake Access", "Free Activities", "Riverside View", "Camping Bed"},
		highlights:  []string{"Stargazing", "Riverside views", "Canvas tents", "Free activities"},
		activities:  []string{"Stargazing", "Bonfire", "Hiking", "Photography"},
		policies:    []string{"Free cancellation up to 7 days"},
	},
	{
		title: "Adventure Camping Resort – Pawna", price: "₹2,799", capacity: 4, rating: 4.7,
		category: "camping", location: "Pawna Lake", checkIn: "2:00 PM",
		description: "Adventure-packed camping with nature trails and photography opportunities.",
		amenities:   []string{"Adventure Activities", "Campfire", "Stargazing", "Food Included", "Nature Trails", "Photography Points", "Lake Proximity", "Friendly Staff"},
		highlights:  []string{"Adventure activities", "Nature trails", "Photography points", "Lake proximity"},
		activities:  []string{"Hiking", "Adventure sports", "Photography", "Bonfire"},
		policies:    []string{"Free cancellation up to 7 days"},
	},
	{
		title: "Nature's Embrace Camping – Pawna", price: "₹2,599", capacity: 4, rating: 4.6,
		category: "camping", location: "Pawna Lake", checkIn: "2:00 PM",
		description: "Peaceful camping with local cuisine and expert guides.",
		amenities:   []string{"Tent Stay", "Bonfire", "Local Cuisine", "Hiking", "Bird Watching", "Photography", "Sunset View", "Expert Guides"},
		highlights:  []string{"Sunset views", "Expert guides", "Local cuisine", "Bird watching"},
		activities:  []string{"Bird watching", "Hiking", "Photography", "Bonfire"},
		policies:    []string{"Free cancellation up to 7 days"},
	},
	{
		title: "Pawna Eco Glamping Site", price: "₹3,099", capacity: 4, rating: 4.9,
		category: "camping", location: "Pawna Lake", checkIn: "2:00 PM",
		description: "Eco-friendly glamping with organic food and wellness activities.",
		amenities:   []string{"Eco-friendly Tents", "Organic Food", "Nature Walks", "Wellness Activities", "Bonfire", "Lake View", "Sustainable Practices", "Garden Access"},
		highlights:  []string{"Eco-friendly", "Organic food", "Wellness center", "Lake views"},
		activities:  []string{"Yoga", "Nature walks", "Meditation", "Bonfire"},
		policies:    []string{"Free cancellation up to 7 days"},
	},

	// cottages
	{
		title: "AC House with Sleeping Loft – Pawna Lake", price: "₹3,199", capacity: 4, rating: 4.6,
		category: "cottage", location: "Pawna Lake", checkIn: "3:00 PM",
		description: "Comfortable AC cottage with swimming pool and lake activities.",
		amenities:   []string{"Private Washroom", "AC", "Common Swimming Pool", "Food Included", "Free Activities", "Paid Boating", "Bonfire", "Lake Access"},
		highlights:  []string{"AC rooms", "Swimming pool", "Lake activities", "Food included"},
		activities:  []string{"Boating", "Swimming", "Bonfire", "Games"},
	},
	{
		title: "Lakestory Resort – Pawna Lake", price: "₹7,499", capacity: 4, rating: 4.8,
		category: "cottage", location: "Pawna Lake", checkIn: "3:00 PM",
		description: "Luxury cottage resort with private pool and smart entertainment.",
		amenities:   []string{"Private Pool", "Private Washroom", "AC", "Mini Fridge", "Smart Projector", "Home Theatre", "BBQ", "Food Included", "Lake Touch"},
		highlights:  []string{"Private pool", "Home theatre", "BBQ area", "Lake touch"},
		activities:  []string{"Swimming", "Movie nights", "BBQ", "Lake activities"},
	},
	{
		title: "Dew Dreams – Couple Stay with Private Pool", price: "₹8,249", capacity: 2, rating: 4.9,
		category: "cottage", location: "Pawna Lake", checkIn: "3:00 PM",
		description: "Romantic couple retreat with private pool and spa services.",
		amenities:   []string{"Private Pool", "Lakeview Room", "Steam Bath", "Food Included", "Free Activities", "Paid Boating", "Bonfire", "Garden", "Room Service"},
		highlights:  []string{"Private pool", "Steam bath", "Garden", "Lakeview"},
		activities:  []string{"Couples yoga", "Spa", "Bonfire", "Boating"},
	},
	{
		title: "Serene Cottage Retreat – Pawna", price: "₹4,999", capacity: 4, rating: 4.7,
		category: "cottage", location: "Pawna Lake", checkIn: "3:00 PM",
		description: "Peaceful cottage with valley views and mini kitchen.",
		amenities:   []string{"Private Cottage", "Valley View", "AC & Heater", "Attached Bathroom", "Mini Kitchen", "Bonfire", "Food Included", "Peaceful Location"},
		highlights:  []string{"Valley views", "Mini kitchen", "Private cottage", "Peaceful"},
		activities:  []string{"Cooking", "Bonfire", "Nature walks", "Meditation"},
	},
	{
		title: "Riverside Cottage Escape – Pawna", price: "₹5,499", capacity: 4, rating: 4.8,
		category: "cottage", location: "Pawna Lake", checkIn: "3:00 PM",
		description: "Riverside cottage with water activities and natural beauty.",
		amenities:   []string{"Riverside Location", "Private Cottage", "AC", "Balcony", "Food Included", "River Activities", "Bonfire", "Natural Beauty"},
		highlights:  []string{"Riverside views", "River activities", "Natural beauty", "Balcony"},
		activities:  []string{"Boating", "Fishing", "River rafting", "Photography"},
	},
	{
		title: "Heritage Cottage Hotel – Pawna", price: "₹6,299", capacity: 4, rating: 4.9,
		category: "cottage", location: "Pawna Lake", checkIn: "3:00 PM",
		description: "Heritage cottage with fine dining and spa services.",
		amenities:   []string{"Heritage Architecture", "Fine Dining", "Spa Services", "Lake View Rooms", "Conference Room", "Bonfire", "Multiple Restaurants", "24-Hour Service"},
		highlights:  []string{"Heritage design", "Fine dining", "Spa services", "Lake views"},
		activities:  []string{"Spa treatments", "Fine dining", "Bonfire", "Cultural tours"},
	},
	{
		title: "Green Canvas Cottages", price: "₹3,199", priceNote: "Adult per night", capacity: 2, rating: 4.7,
		category: "cottage", location: "Pawna Lake, Lonavala", checkIn: "3:00 PM",
		description: "Extreme lakeside location with boating, bonfire, and live music on Saturdays.",
		amenities:   []string{"Food Included", "Boating (Extra cost)", "Bonfire", "Lake access", "Restaurant", "Private Washroom", "Live Music and DJ on Sat", "Activities"},
		highlights:  []string{"Lakeside location", "Live music", "Boating available", "Meal included"},
		activities:  []string{"Badminton", "Carrom", "Archery", "Bonfire", "Music", "Boating"},
	},

	// villas
	{
		title: "Dome Story Resort – Malvandi Lake, Lonavala", price: "₹7,499", capacity: 4, rating: 4.9,
		category: "villa", location: "Lonavala", checkIn: "3:00 PM",
		description: "Luxury dome villa resort with lake views and exclusive amenities.",
		amenities:   []string{"Private Washroom", "AC", "Mini Fridge", "Electric Kettle", "BBQ", "Food Included", "Free Boating", "Bonfire", "Lake Access"},
		highlights:  []string{"Lake views", "Dome architecture", "Free boating", "BBQ area"},
		activities:  []string{"Boating", "Swimming", "Bonfire", "Stargazing"},
	},
	{
		title: "Luxury Villa Estate – Lonavala", price: "₹12,999", capacity: 4, rating: 4.9,
		category: "villa", location: "Lonavala", checkIn: "3:00 PM",
		description: "Ultimate luxury villa with private chef and premium amenities.",
		amenities:   []string{"Private Villa", "Mountain View", "Infinity Pool", "Private Chef", "Wine Cellar", "Spa", "Garden Terrace", "24-Hour Butler"},
		highlights:  []string{"Private chef", "Infinity pool", "Wine cellar", "24-hour butler"},
		activities:  []string{"Fine dining", "Spa", "Wine tasting", "Terrace dining"},
	},
	{
		title: "Mountain Retreat Villa – Lonavala", price: "₹9,999", capacity: 4, rating: 4.8,
		category: "villa", location: "Lonavala", checkIn: "3:00 PM",
		description: "Mountain villa with valley views and private pool.",
		amenities:   []string{"Private Villa", "Valley View", "Private Pool", "Grill Kitchen", "Living Room", "Terrace Seating", "Nature Access", "Peaceful Location"},
		highlights:  []string{"Valley views", "Private pool", "Grill kitchen", "Nature access"},
		activities:  []string{"Hiking", "Grilling", "Swimming", "Nature walks"},
	},
	{
		title: "Heritage Villa – Lonavala", price: "₹10,499", capacity: 4, rating: 4.7,
		category: "villa", location: "Lonavala", checkIn: "3:00 PM",
		description: "Historic villa with antique furnishings and fine dining.",
		amenities:   []string{"Historic Villa", "Antique Furnishings", "Private Grounds", "Library", "Music Room", "Fine Dining", "Garden", "Heritage Charm"},
		highlights:  []string{"Historic architecture", "Antique furnishings", "Fine dining", "Garden"},
		activities:  []string{"Fine dining", "Library visits", "Music events", "Garden tours"},
	},
	{
		title: "Waterfront Villa Paradise – Lonavala", price: "₹11,499", capacity: 4, rating: 4.9,
		category: "villa", location: "Lonavala", checkIn: "3:00 PM",
		description: "Waterfront villa with yacht access and premium water amenities.",
		amenities:   []string{"Waterfront Location", "Private Beach Access", "Infinity Pool", "Yacht Access", "Fine Dining", "Spa Suite", "Entertainment Hall", "Concierge Service"},
		highlights:  []string{"Waterfront location", "Yacht access", "Infinity pool", "Private beach"},
		activities:  []string{"Yacht sailing", "Beach activities", "Water sports", "Fine dining"},
	},
	{
		title: "Eco-Luxury Villa – Lonavala", price: "₹8,999", capacity: 4, rating: 4.8,
		category: "villa", location: "Lonavala", checkIn: "3:00 PM",
		description: "Sustainable luxury villa with wellness facilities.",
		amenities:   []string{"Sustainable Villa", "Solar Powered", "Organic Gardens", "Natural Pool", "Wellness Center", "Yoga Deck", "Forest View", "Eco-Friendly Materials"},
		highlights:  []string{"Eco-friendly", "Yoga facilities", "Organic gardens", "Forest views"},
		activities:  []string{"Yoga", "Meditation", "Nature walks", "Wellness treatments"},
	},
}
