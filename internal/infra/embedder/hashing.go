package embedder

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strings"

	"github.com/yanqian/prompt-optimizer/internal/domain/aioptimizer"
)

var hashingToken = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// HashingEmbedder builds bag-of-words vectors with the hashing trick. It needs
// no network access, and texts sharing words score as similar.
type HashingEmbedder struct {
	dim int
}

// NewHashingEmbedder constructs the embedder. A non-positive dim uses 256.
func NewHashingEmbedder(dim int) *HashingEmbedder {
	if dim <= 0 {
		dim = 256
	}
	return &HashingEmbedder{dim: dim}
}

// Embed converts each text into an L2-normalized term vector.
func (e *HashingEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector := make([]float32, e.dim)
		for _, tok := range hashingToken.FindAllString(strings.ToLower(text), -1) {
			hash := fnv.New64a()
			_, _ = hash.Write([]byte(tok))
			sum := hash.Sum64()
			sign := float32(1)
			if sum>>63 == 1 {
				sign = -1
			}
			vector[sum%uint64(e.dim)] += sign
		}
		normalize(vector)
		vectors[i] = vector
	}
	return vectors, nil
}

func normalize(v []float32) {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		return
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range v {
		v[i] *= scale
	}
}

var _ aioptimizer.Embedder = (*HashingEmbedder)(nil)
