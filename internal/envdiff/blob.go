package envdiff

import (
	"encoding/base64"
	"encoding/json"

	"github.com/klauspost/compress/zstd"
	"go.trai.ch/zerr"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// Encode serializes state to JSON, compresses it with zstd, and returns the
// result as a base64 string suitable for storage in a single environment
// variable.
func Encode(state *domain.EnvState) (string, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return "", zerr.Wrap(err, "marshal env state")
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return "", zerr.Wrap(err, "create zstd encoder")
	}
	compressed := enc.EncodeAll(raw, nil)
	if cerr := enc.Close(); cerr != nil {
		return "", zerr.Wrap(cerr, "close zstd encoder")
	}

	return base64.StdEncoding.EncodeToString(compressed), nil
}

// Decode is the inverse of Encode. It returns domain.ErrBlobDecodeFailed
// (wrapped with the stage that failed) on any malformed input, since a
// corrupted or hand-edited ENVOLUNTARY_ENV_STATE must never crash the shell
// prompt.
func Decode(blob string) (*domain.EnvState, error) {
	compressed, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBlobDecodeFailed.Error()), "stage", "base64 decode")
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBlobDecodeFailed.Error()), "stage", "create zstd decoder")
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBlobDecodeFailed.Error()), "stage", "zstd decode")
	}

	var state domain.EnvState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBlobDecodeFailed.Error()), "stage", "unmarshal env state")
	}
	return &state, nil
}
