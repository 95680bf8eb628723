package handler

import (
	"errors"
	"net/http"
	"strconv"
	"wedding-api/common"
	"wedding-api/repository"
)

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// storageError maps repository sentinels to client errors. Anything else is
// reported as a 500 with message.
func storageError(err error, message string) *common.AppError {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return common.NewAppError(http.StatusNotFound, "Not found", err)
	case errors.Is(err, repository.ErrBadRef):
		return common.NewAppError(http.StatusBadRequest, "Referenced record does not exist", err)
	case errors.Is(err, repository.ErrDuplicate):
		return common.NewAppError(http.StatusConflict, "Record already exists", err)
	}
	return common.NewAppError(http.StatusInternalServerError, message, err)
}

func pathID(r *http.Request, name string) (int64, *common.AppError) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid "+name, err)
	}
	return id, nil
}
