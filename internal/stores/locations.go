package stores

// Location is one record store on the map page.
//
// The map widget itself is an external collaborator; this package only
// owns the data it consumes: marker coordinates plus the card fields for
// the synchronized list.
type Location struct {
	Name    string  `json:"name"`
	Rating  string  `json:"rating"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	Notes   string  `json:"notes"`
}

// locations is the curated store list, in display order.
var locations = []Location{
	{
		Name:    "Underground Sounds",
		Rating:  "3/5",
		Lat:     42.2810,
		Lng:     -83.7473,
		Address: "120 E Washington St, Ann Arbor, MI 48104",
		Notes:   "Not quite as pricey as Encore, but they mainly have new records. They randomly had a few Habibi Funk albums, Frank Ocean, and Fairuz — stuff you can only get overseas. Owner was pretty eager to take my recommendations on what albums to order for the store.",
	},
	{
		Name:    "Wazoo Records",
		Rating:  "4/5",
		Lat:     42.2769,
		Lng:     -83.7415,
		Address: "336 S State St, Ann Arbor, MI 48104",
		Notes:   "It’s pretty cramped and tiny but great for looking through used goods. I find a gem every once in a while. Most affordable one in Ann Arbor. Guy who owns it is fun to talk to about music too.",
	},
	{
		Name:    "Encore Records",
		Rating:  "4/5",
		Lat:     42.2837,
		Lng:     -83.7485,
		Address: "208 N 4th Ave, Ann Arbor, MI 48104",
		Notes:   "Usually a great and wide selection, especially with jazz. Super expensive, though.",
	},
	{
		Name:    "People's Records",
		Rating:  "6/5!!",
		Lat:     42.36517,
		Lng:     -83.06571,
		Address: "1464 Gratiot Ave, Detroit, MI 48207",
		Notes:   "My favorite place to explore and buy records! Such a great collection of jazz, electronic/dance, soul — anything really. Lots of local music too. You can find rare recordings you didn’t even know existed, all for affordable prices. Very accessible and connected to a cafe that I love as well. Highly recommended!",
	},
	{
		Name:    "UHF Records",
		Rating:  "4/5",
		Lat:     42.4902,
		Lng:     -83.1445,
		Address: "512 S Washington Ave, Royal Oak, MI 48067",
		Notes:   "I don’t get out here often because of the location, but they have some great finds. The new stuff can be pretty expensive, though. I did find some Frank Ocean albums I had been looking for for a few years, and a used Aretha Franklin find.",
	},
	{
		Name:    "Detroit Record Club",
		Rating:  "2/5",
		Lat:     42.4890,
		Lng:     -83.1448,
		Address: "28834 Woodward Ave, Royal Oak, MI 48067",
		Notes:   "Small and expensive for no reason. I have only been once and didn’t really like the vibe in there.",
	},
	{
		Name:    "Flipside Records",
		Rating:  "4/5",
		Lat:     42.4975,
		Lng:     -83.1825,
		Address: "3099 Coolidge Hwy, Berkley, MI 48072",
		Notes:   "Huge selections, fun to walk around and explore. Fair prices and the used vinyl is in good shape.",
	},
	{
		Name:    "Solo Records & Tapes",
		Rating:  "4/5",
		Lat:     42.5130,
		Lng:     -83.1820,
		Address: "30148 Woodward Ave, Royal Oak, MI 48073",
		Notes:   "I found a lot of great jazz albums here. I also found one of my favorite records by chance here. Fantastic prices, but you gotta check that the records aren’t scratched before buying.",
	},
	{
		Name:    "Found Sound",
		Rating:  "3/5",
		Lat:     42.46237,
		Lng:     -83.13602,
		Address: "234 W Nine Mile Rd, Ferndale, MI 48220",
		Notes:   "Extensive selection, mixed prices depending on what you’re looking for. I haven’t spent too much time in here.",
	},
	{
		Name:    "Your Media Exchange",
		Rating:  "1/5",
		Lat:     42.2790,
		Lng:     -83.7480,
		Address: "319 S Main St, Ann Arbor, MI 48104 (now closed)",
		Notes:   "While it’s true that they had an extensive selection, everything was overpriced for no reason. Take your average price for a new record and inflate it. I think this store recently closed for good now, though.",
	},
}

// All returns the store list in display order. The returned slice is a
// copy; callers may reorder it freely.
func All() []Location {
	out := make([]Location, len(locations))
	copy(out, locations)
	return out
}

// ByName returns the store with the given name.
func ByName(name string) (Location, bool) {
	for _, loc := range locations {
		if loc.Name == name {
			return loc, true
		}
	}
	return Location{}, false
}

// Center returns the centroid of all store coordinates, a reasonable
// initial map viewport.
func Center() (lat, lng float64) {
	for _, loc := range locations {
		lat += loc.Lat
		lng += loc.Lng
	}
	n := float64(len(locations))
	return lat / n, lng / n
}
