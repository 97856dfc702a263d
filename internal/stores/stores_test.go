package stores

import "testing"

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	if len(first) == 0 {
		t.Fatal("store list is empty")
	}

	first[0].Name = "mutated"
	if second := All(); second[0].Name == "mutated" {
		t.Error("All() exposed the backing list")
	}
}

func TestByName(t *testing.T) {
	loc, ok := ByName("Wazoo Records")
	if !ok {
		t.Fatal("Wazoo Records not found")
	}
	if loc.Address == "" || loc.Lat == 0 || loc.Lng == 0 {
		t.Errorf("incomplete location: %+v", loc)
	}

	if _, ok := ByName("No Such Store"); ok {
		t.Error("unknown name reported found")
	}
}

func TestCenter_WithinMichigan(t *testing.T) {
	lat, lng := Center()
	if lat < 42 || lat > 43 || lng < -84 || lng > -83 {
		t.Errorf("Center() = %f, %f, outside the metro area", lat, lng)
	}
}
