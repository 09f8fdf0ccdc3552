package protocolversion_test

import (
	"testing"

	"github.com/go-mclib/picolimbo/protocolversion"
)

func TestFromClampsUnknownVersionsToNearestBound(t *testing.T) {
	tests := []struct {
		name string
		raw  int32
		want protocolversion.ProtocolVersion
	}{
		{"below oldest clamps up", 1, protocolversion.Oldest},
		{"above newest clamps down", 9999, protocolversion.Newest},
		{"any stays any", -1, protocolversion.Any},
		{"known version passes through", 767, 767},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := protocolversion.From(tt.raw); got != tt.want {
				t.Fatalf("From(%d) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFromMaxAndFromMinClampToBounds(t *testing.T) {
	if got := protocolversion.FromMax(); got != protocolversion.Newest {
		t.Fatalf("FromMax() = %v, want %v", got, protocolversion.Newest)
	}
	if got := protocolversion.FromMin(); got != protocolversion.Oldest {
		t.Fatalf("FromMin() = %v, want %v", got, protocolversion.Oldest)
	}
}

func TestReportsFollowsAliasTable(t *testing.T) {
	if got := protocolversion.ProtocolVersion(765).Reports(); got != 764 {
		t.Fatalf("765.Reports() = %v, want 764", got)
	}
	if got := protocolversion.ProtocolVersion(767).Reports(); got != 767 {
		t.Fatalf("767.Reports() = %v, want 767 (no alias)", got)
	}
}

func TestDataAliasCanDivergeFromReports(t *testing.T) {
	// 770 shares 769's packet-ID table but keeps its own registry data.
	if got := protocolversion.ProtocolVersion(770).Reports(); got != 769 {
		t.Fatalf("770.Reports() = %v, want 769", got)
	}
	if got := protocolversion.ProtocolVersion(770).Data(); got != 770 {
		t.Fatalf("770.Data() = %v, want 770", got)
	}
	// 766 has no reports alias (it's a parent version) but also none for
	// data; both should report themselves.
	if got := protocolversion.ProtocolVersion(766).Data(); got != 766 {
		t.Fatalf("766.Data() = %v, want 766", got)
	}
}

func TestAtLeastAndBelow(t *testing.T) {
	v := protocolversion.ProtocolVersion(767)
	if !v.AtLeast(765) {
		t.Fatal("767.AtLeast(765) = false, want true")
	}
	if v.AtLeast(768) {
		t.Fatal("767.AtLeast(768) = true, want false")
	}
	if !v.Below(768) {
		t.Fatal("767.Below(768) = false, want true")
	}
	if v.Below(767) {
		t.Fatal("767.Below(767) = true, want false")
	}
}

func TestAnyNeverSatisfiesAConcreteBound(t *testing.T) {
	if protocolversion.Any.AtLeast(0) {
		t.Fatal("Any.AtLeast(0) = true, want false")
	}
	if protocolversion.Any.Below(9999) {
		t.Fatal("Any.Below(9999) = true, want false")
	}
}

func TestRangeContains(t *testing.T) {
	r := protocolversion.Range{Min: 759, Max: 764}
	if r.Contains(758) {
		t.Fatal("range should exclude 758")
	}
	if !r.Contains(759) {
		t.Fatal("range should include its Min")
	}
	if !r.Contains(763) {
		t.Fatal("range should include 763")
	}
	if r.Contains(764) {
		t.Fatal("range should exclude its Max (half-open)")
	}
	if r.Contains(protocolversion.Any) {
		t.Fatal("a bounded range should never contain Any")
	}
}

func TestAlwaysRangeContainsAny(t *testing.T) {
	if !protocolversion.Always.Contains(protocolversion.Any) {
		t.Fatal("the unbounded range should contain Any")
	}
	if !protocolversion.Always.Contains(4) {
		t.Fatal("the unbounded range should contain every concrete version")
	}
}
