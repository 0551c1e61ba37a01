package seed

import (
	"tourmate/internal/domain/guide"
	"tourmate/internal/pkg/errs"
)

// The catalog is a fixed, curated data set carried over from the
// original marketing site. It is trusted input, but it still goes
// through the domain constructors so the referential invariants are
// checked once at startup instead of assumed forever.

type destinationSeed struct {
	id           int64
	name         string
	image        string
	rating       float64
	priceVND     int64
	durationDays int
	maxGroupSize int
	reviews      []reviewSeed
	guideID      int64
}

type reviewSeed struct {
	rating int
	text   string
}

type guideSeed struct {
	id           int64
	name         string
	avatar       string
	rating       float64
	totalReviews int
	totalTrips   int
	languages    []string
	location     string
	specialties  []string
	bio          string
	destinations []destinationSeed
}

var guideSeeds = []guideSeed{
	{
		id:           1,
		name:         "Tan Dinh Nguyen",
		avatar:       "https://vnn-imgs-f.vgcloud.vn/2021/03/01/17/giai-phap-tang-chat-luong-hoc-truc-tuyen-cho-tre-tieu-hoc-7.jpg",
		rating:       4.8,
		totalReviews: 120,
		totalTrips:   50,
		languages:    []string{"Vietnamese", "English", "French"},
		location:     "Hanoi, Vietnam",
		specialties:  []string{"Cultural Tours", "Historical Sites", "Street Food"},
		bio:          "Experienced guide with a passion for sharing Vietnam's rich history and culture.",
		destinations: []destinationSeed{
			{
				id:           1,
				name:         "Hanoi Old Quarter Walk",
				image:        "https://adventurejourney.vn/upload/image/news/old-quarter-hanoi.jpg",
				rating:       4.9,
				priceVND:     300000,
				durationDays: 1,
				maxGroupSize: 10,
				reviews: []reviewSeed{
					{rating: 5, text: "Minh's knowledge of Hanoi's history is impressive!"},
					{rating: 4, text: "Great tour, but it was quite crowded in some areas."},
				},
				guideID: 1,
			},
			{
				id:           2,
				name:         "Halong Bay Cruise",
				image:        "https://www.pelago.co/img/products/VN-Vietnam/standard-cruise-halong-bay-1-day-trip-from-hanoi-by-expressway/3d573897-7ece-449b-84ef-6d4bcf5b0d46_standard-cruise-halong-bay-1-day-trip-from-hanoi-by-expressway-medium.jpg",
				rating:       4.8,
				priceVND:     800000,
				durationDays: 2,
				maxGroupSize: 20,
				reviews: []reviewSeed{
					{rating: 5, text: "Breathtaking views and excellent service on the cruise."},
					{rating: 5, text: "Minh made sure we had an unforgettable experience."},
				},
				guideID: 1,
			},
		},
	},
	{
		id:           2,
		name:         "Nguyen Cao Mai",
		avatar:       "https://tinhdoan.caobang.gov.vn/uploads/news/2023_05/nu-sinh-vien-nguoi-san-diu-het-minh-voi-mau-ao-xanh.jpg",
		rating:       4.9,
		totalReviews: 95,
		totalTrips:   40,
		languages:    []string{"Vietnamese", "English", "Japanese"},
		location:     "Ho Chi Minh City, Vietnam",
		specialties:  []string{"City Tours", "War History", "Local Cuisine"},
		destinations: []destinationSeed{
			{
				id:           3,
				name:         "Cu Chi Tunnels Tour",
				image:        "https://statics.vinpearl.com/cu-chi-tunnels-8_1689392552.jpg",
				rating:       4.9,
				priceVND:     450000,
				durationDays: 1,
				maxGroupSize: 15,
				reviews: []reviewSeed{
					{rating: 5, text: "Lan's insights into the war history were eye-opening."},
					{rating: 4, text: "Informative tour, but the tunnels can be claustrophobic."},
				},
				guideID: 2,
			},
			{
				id:           4,
				name:         "Mekong Delta Exploration",
				image:        "https://adventurejourney.vn/upload/image/mekongdelta/mekong-river-delta.jpg",
				rating:       4.7,
				priceVND:     600000,
				durationDays: 1,
				maxGroupSize: 12,
				reviews: []reviewSeed{
					{rating: 5, text: "The boat ride through the Mekong was so peaceful."},
					{rating: 4, text: "Loved the local fruit tasting, but the day was quite long."},
				},
				guideID: 2,
			},
		},
	},
}

// Catalog materializes the seed guides through the domain constructors.
func Catalog() ([]*guide.TourGuide, error) {
	guides := make([]*guide.TourGuide, 0, len(guideSeeds))
	for _, gs := range guideSeeds {
		destinations := make([]*guide.Destination, 0, len(gs.destinations))
		for _, ds := range gs.destinations {
			rating, err := guide.NewScore(ds.rating)
			if err != nil {
				return nil, errs.Wrap(err, "invalid seed destination rating")
			}
			reviews := make([]guide.DestinationReview, 0, len(ds.reviews))
			for _, rs := range ds.reviews {
				rev, err := guide.NewDestinationReview(rs.rating, rs.text)
				if err != nil {
					return nil, errs.Wrap(err, "invalid seed destination review")
				}
				reviews = append(reviews, rev)
			}
			size := ds.maxGroupSize
			dest, err := guide.NewDestination(ds.id, ds.name, ds.image, &rating, ds.priceVND, ds.durationDays, &size, reviews, ds.guideID)
			if err != nil {
				return nil, errs.Wrap(err, "invalid seed destination")
			}
			destinations = append(destinations, dest)
		}

		score, err := guide.NewScore(gs.rating)
		if err != nil {
			return nil, errs.Wrap(err, "invalid seed guide rating")
		}
		g, err := guide.NewTourGuide(
			gs.id, gs.name, gs.avatar, score,
			gs.totalReviews, gs.totalTrips,
			gs.languages, gs.location, gs.specialties, gs.bio,
			destinations,
		)
		if err != nil {
			return nil, errs.Wrap(err, "invalid seed guide")
		}
		guides = append(guides, g)
	}
	return guides, nil
}
