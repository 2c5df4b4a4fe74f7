package metrics

const (
	LabelAlgorithm = "algorithm"
	LabelReason    = "reason"
)

const (
	namespaceCrypto = "crypto"
	subsystemHasher = "hasher"
	subsystemBatch  = "batch"
)
