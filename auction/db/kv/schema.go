package kv

// The schema defines the three auction partitions and the sequence indexes
// that keep provider and route listings in first-write order across
// restarts. Sequence buckets map an 8-byte big-endian counter to the
// primary key of the record inserted at that point.
var (
	providersBucket = []byte("providers")
	routesBucket    = []byte("routes")
	statsBucket     = []byte("stats")

	// Insertion-order indexes.
	providerSeqBucket = []byte("provider-seq")
	routeSeqBucket    = []byte("route-seq")

	// Stats key.
	statsKey = []byte("stats")
)
