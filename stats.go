package scenepool

// Stats is a snapshot of a pool's counters.
type Stats struct {
	Name            string `json:"name" yaml:"name"`
	CountAll        int    `json:"count_all" yaml:"count_all"`
	CountActive     int    `json:"count_active" yaml:"count_active"`
	CountInactive   int    `json:"count_inactive" yaml:"count_inactive"`
	Outstanding     int    `json:"outstanding" yaml:"outstanding"`
	MaxSize         int    `json:"max_size" yaml:"max_size"`
	CollectionCheck bool   `json:"collection_check" yaml:"collection_check"`
}
