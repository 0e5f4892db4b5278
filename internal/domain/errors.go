package domain

import "errors"

// ErrNoSuchLesson lesson identifier outside the authored catalog
var ErrNoSuchLesson = errors.New("No such lesson")

// ErrNoSuchPhase phase number outside the curriculum
var ErrNoSuchPhase = errors.New("No such phase")
