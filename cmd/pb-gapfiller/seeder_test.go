package main

import (
	"strings"
	"testing"

	"github.com/synthdose/pbgap/pacbio/galigner"
)

const sampleAnchors = `
read r1
cluster
anchor 1 0 1 0:0,1:1,2:2
anchor 2 0 0 3:0
read r2
cluster
anchor 1 0 0 0:0
cluster
anchor 2 0 0 5:0
`

func TestLoadAnchorsGroupsByReadAndCluster(t *testing.T) {
	clusters, err := loadAnchors(strings.NewReader(sampleAnchors))
	if err != nil {
		t.Fatalf("loadAnchors() error = %v", err)
	}
	if len(clusters["r1"]) != 1 || len(clusters["r1"][0]) != 2 {
		t.Fatalf("r1 clusters = %+v, want one cluster of two anchors", clusters["r1"])
	}
	if len(clusters["r2"]) != 2 {
		t.Fatalf("r2 clusters = %+v, want two clusters", clusters["r2"])
	}
	qr := clusters["r1"][0][0]
	if qr.AverageReadPosition != 1.0 {
		t.Fatalf("AverageReadPosition = %v, want 1.0", qr.AverageReadPosition)
	}
	if !qr.Valid() {
		t.Fatalf("QualityRange %+v fails its own Valid() check", qr)
	}
}

func TestSimpleSeederGetChainingClustersAndDefaults(t *testing.T) {
	seeder := newSimpleSeeder(10)
	clusters, err := loadAnchors(strings.NewReader(sampleAnchors))
	if err != nil {
		t.Fatalf("loadAnchors() error = %v", err)
	}
	seeder.clusters = clusters

	got := seeder.GetChainingClusters(galigner.Read{Name: "r1"})
	if len(got) != 1 {
		t.Fatalf("GetChainingClusters(r1) = %+v, want one cluster", got)
	}
	if low, high := seeder.GetPathLimits(got[0][0], got[0][1], 3, 2); low != 0 || high != 15 {
		t.Fatalf("GetPathLimits() = (%d, %d), want (0, 15)", low, high)
	}
	if !seeder.CanFollow(got[0][0], got[0][1]) {
		t.Fatal("CanFollow() = false, want true")
	}
}
