package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSaveGame      = "game saved successfully"
	MessageSuccessUnsaveGame    = "game removed from saved list"
	MessageSuccessGetSavedGames = "success get saved games"
	MessageSuccessUpdateSaved   = "saved game updated successfully"

	MessageFailedSaveGame      = "failed to save game"
	MessageFailedUnsaveGame    = "failed to remove saved game"
	MessageFailedGetSavedGames = "failed to get saved games"
	MessageFailedUpdateSaved   = "failed to update saved game"

	ErrGameAlreadySaved  = errors.New("game already saved")
	ErrSavedGameNotFound = errors.New("saved game not found")
)

type (
	GameData struct {
		Name            string   `json:"name"`
		BackgroundImage string   `json:"background_image"`
		Genres          []string `json:"genres"`
		Rating          float64  `json:"rating,omitempty"`
		Released        string   `json:"released,omitempty"`
	}

	SaveGameRequest struct {
		GameID          int      `json:"game_id" validate:"required"`
		Name            string   `json:"name" validate:"required"`
		BackgroundImage string   `json:"background_image,omitempty"`
		Genres          []string `json:"genres,omitempty"`
		Rating          float64  `json:"rating,omitempty"`
		Released        string   `json:"released,omitempty"`
	}

	UpdateSavedGameRequest struct {
		Rating *int   `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
		Notes  string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	}

	SavedGame struct {
		ID        string    `json:"id"`
		GameID    int       `json:"game_id"`
		GameData  GameData  `json:"game_data"`
		Rating    *int      `json:"rating,omitempty"`
		Notes     string    `json:"notes,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
