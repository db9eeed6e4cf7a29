package geodata

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jengzang/travelmap-backend-go/internal/models"
)

// Documents holds the two static inputs the whole pipeline runs on: the
// geometric feature collection and the trip summary. Loaded once, read-only
// afterwards; filter changes never touch them.
type Documents struct {
	Features []models.Feature
	Summary  models.Summary
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Load fetches and decodes both documents. Both must succeed before the
// first render: any bad status, network failure or undecodable body aborts
// with an error naming the failing source.
func Load(featuresSrc, summarySrc string) (*Documents, error) {
	featureBody, err := fetch(featuresSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to load feature collection: %w", err)
	}

	summaryBody, err := fetch(summarySrc)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip summary: %w", err)
	}

	features, err := DecodeFeatureCollection(featureBody)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", featuresSrc, err)
	}

	var summary models.Summary
	if err := json.Unmarshal(summaryBody, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", summarySrc, err)
	}

	return &Documents{Features: features, Summary: summary}, nil
}

// fetch reads a document from an http(s) URL or a local path.
func fetch(src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		resp, err := httpClient.Get(src)
		if err != nil {
			return nil, fmt.Errorf("GET %s: %w", src, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("GET %s: unexpected status %d", src, resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("GET %s: read body: %w", src, err)
		}
		return body, nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	return data, nil
}

// geoJSON wire types. Coordinates stay raw until the geometry type is known.
type featureCollectionWire struct {
	Type     string        `json:"type"`
	Features []featureWire `json:"features"`
}

type featureWire struct {
	Type       string              `json:"type"`
	Geometry   geometryWire        `json:"geometry"`
	Properties models.FeatureProps `json:"properties"`
}

type geometryWire struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// DecodeFeatureCollection decodes a GeoJSON feature collection into typed
// features. Decoding is lenient per entry: a feature whose geometry is
// missing, typeless or malformed is kept with GeometryUnknown so the render
// pass can skip it without aborting; only a structurally broken document is
// an error.
func DecodeFeatureCollection(data []byte) ([]models.Feature, error) {
	var fc featureCollectionWire
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, err
	}

	features := make([]models.Feature, 0, len(fc.Features))
	for _, fw := range fc.Features {
		f := models.Feature{Kind: models.GeometryUnknown, Props: fw.Properties}
		if f.Props.Category == "" {
			f.Props.Category = models.CategoryOther
		}

		switch fw.Geometry.Type {
		case "LineString":
			var coords [][]float64
			if err := json.Unmarshal(fw.Geometry.Coordinates, &coords); err == nil && len(coords) >= 2 {
				line := make([]models.Coordinate, 0, len(coords))
				ok := true
				for _, c := range coords {
					if len(c) < 2 {
						ok = false
						break
					}
					// GeoJSON order is [lon, lat]
					line = append(line, models.Coordinate{Lat: c[1], Lon: c[0]})
				}
				if ok {
					f.Kind = models.GeometryRoute
					f.Line = line
				}
			}
		case "Point":
			var coord []float64
			if err := json.Unmarshal(fw.Geometry.Coordinates, &coord); err == nil && len(coord) >= 2 {
				f.Kind = models.GeometryStop
				f.Point = models.Coordinate{Lat: coord[1], Lon: coord[0]}
			}
		}

		features = append(features, f)
	}

	return features, nil
}
