package ember

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable named by the on-disk layout and scoring model.
// Zero-value Config is not usable; start from DefaultConfig.
//
// Config only carries values: no code in this package reads its fields.
// There is no segment store, index log, merge or Search function, and
// InvertedIndex takes its BM25 constants from DefaultBM25Parameters.
type Config struct {
	// Dir is the root directory holding tokens, index, index_meta, segments/.
	Dir string `yaml:"dir"`

	// SegmentMaxBytes seals the active segment once bytes_written would
	// exceed it on the next put.
	SegmentMaxBytes int64 `yaml:"segment_max_bytes"`

	// FlushBytes is the buffer-size flush threshold, shared by the segment
	// store and the index log.
	FlushBytes int64 `yaml:"flush_bytes"`

	// FlushInterval is the buffer-age flush threshold.
	FlushInterval time.Duration `yaml:"flush_interval"`

	// MergeDeletedRatio triggers segment compaction once a sealed segment's
	// deleted_bytes/bytes_written reaches it.
	MergeDeletedRatio float64 `yaml:"merge_deleted_ratio"`

	// BM25K1 and BM25B are the Okapi BM25 tuning constants.
	BM25K1 float64 `yaml:"bm25_k1"`
	BM25B  float64 `yaml:"bm25_b"`

	// TopK is the default result-set size for Search.
	TopK int `yaml:"top_k"`
}

// DefaultConfig returns the documented defaults from the on-disk layout
// section: 50 MiB segments, a 1 MiB / 5 s flush policy, 0.30 merge trigger,
// BM25 k1=1.2 b=0.75, top_k=10.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:               dir,
		SegmentMaxBytes:   50 * 1024 * 1024,
		FlushBytes:        1024 * 1024,
		FlushInterval:     5 * time.Second,
		MergeDeletedRatio: 0.30,
		BM25K1:            1.2,
		BM25B:             0.75,
		TopK:              10,
	}
}

// LoadConfig reads a YAML config file layered over DefaultConfig(dir) — any
// field absent from the file keeps its default value.
func LoadConfig(path string, dir string) (Config, error) {
	cfg := DefaultConfig(dir)
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, wrapIO("read config", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, wrapParse("decode config", err)
	}
	return cfg, nil
}
