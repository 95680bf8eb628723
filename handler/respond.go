package handler

import (
	"net/http"
	"wedding-api/common"
)

// respond writes v with status, or converts err into an AppError.
func respond(w http.ResponseWriter, status int, v interface{}, err error, message string) *common.AppError {
	if err != nil {
		return storageError(err, message)
	}
	common.WriteJSON(w, status, v)
	return nil
}

func noContent(w http.ResponseWriter, err error, message string) *common.AppError {
	if err != nil {
		return storageError(err, message)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
