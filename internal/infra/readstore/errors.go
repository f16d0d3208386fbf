package readstore

import (
	"condo-parking/internal/infra"
	"condo-parking/internal/pkg/pgconv"
)

func classifyError(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
