package ports

import (
	"goparam/domain/pooling"
)

// EstimateReaderPort loads per-imputation estimate tables from an external
// source (file, database, in-memory fixture).
type EstimateReaderPort interface {
	ReadEstimates() ([]pooling.ImputationEstimate, error)
}

// MatrixReaderPort loads a numeric data matrix as named columns. Missing
// cells are represented as NaN so downstream code can use pairwise-complete
// observations.
type MatrixReaderPort interface {
	ReadMatrix() (headers []string, columns [][]float64, err error)
}
