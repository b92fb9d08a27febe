package core

import (
	"errors"
	"log"
)

var (
	ErrEndOfBuffer     = errors.New("end of buffer")
	ErrStartOfBuffer   = errors.New("start of buffer")
	ErrInvalidPosition = errors.New("invalid position")
	ErrNoGeometry      = errors.New("no geometry attached")
	ErrNoSelection     = errors.New("no active selection")
	ErrCopyFailed      = errors.New("failed to copy selection")
)

type ErrorId int

const (
	ErrEndOfBufferId ErrorId = iota
	ErrStartOfBufferId
	ErrInvalidPositionId
	ErrNoGeometryId
	ErrNoSelectionId
	ErrCopyFailedId
)

type Error struct {
	id  ErrorId
	err error
}

func (v *viewer) DispatchError(id ErrorId, err error) {
	select {
	case v.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Println("Channel is full, unable to send error signal")
	}
}
