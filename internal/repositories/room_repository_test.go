package repositories

import (
	"testing"

	"github.com/mayones/quizbot/internal/models"
)

func TestGetRoomByChatID_AbsentIsNotAnError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoomRepository(db)

	room, err := repo.GetRoomByChatID(-100)
	if err != nil {
		t.Fatalf("GetRoomByChatID() error = %v, want nil for absent room", err)
	}
	if room != nil {
		t.Errorf("GetRoomByChatID() = %+v, want nil", room)
	}
}

func TestCreateRoom_Bootstrap(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoomRepository(db)

	joiner := models.Player{ID: 1, Username: "alice"}
	room, err := repo.CreateRoom(-100, joiner)
	if err != nil {
		t.Fatalf("CreateRoom() error = %v", err)
	}

	if room.Active {
		t.Error("new room Active = true, want false")
	}

	players, err := room.PlayerList()
	if err != nil {
		t.Fatalf("PlayerList() error = %v", err)
	}
	if len(players) != 1 || players[0].ID != 1 {
		t.Errorf("new room players = %+v, want exactly the joiner", players)
	}

	// The returned handle matches what a fresh lookup sees.
	fetched, err := repo.GetRoomByChatID(-100)
	if err != nil {
		t.Fatalf("GetRoomByChatID() error = %v", err)
	}
	if fetched == nil || fetched.ID != room.ID {
		t.Errorf("fetched room = %+v, want id %d", fetched, room.ID)
	}
}

func TestSetPlayers_ReplacesList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoomRepository(db)

	if _, err := repo.CreateRoom(-100, models.Player{ID: 1, Username: "a"}); err != nil {
		t.Fatalf("CreateRoom() error = %v", err)
	}

	newList := []models.Player{{ID: 2, Username: "b"}, {ID: 1, Username: "a"}}
	if _, err := repo.SetPlayers(-100, newList); err != nil {
		t.Fatalf("SetPlayers() error = %v", err)
	}

	room, err := repo.GetRoomByChatID(-100)
	if err != nil {
		t.Fatalf("GetRoomByChatID() error = %v", err)
	}
	players, err := room.PlayerList()
	if err != nil {
		t.Fatalf("PlayerList() error = %v", err)
	}
	if len(players) != 2 || players[0].ID != 2 || players[1].ID != 1 {
		t.Errorf("players after SetPlayers = %+v, want [b, a]", players)
	}
}

func TestSetPlayers_MissingRoom(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoomRepository(db)

	if _, err := repo.SetPlayers(-100, nil); err == nil {
		t.Error("SetPlayers() expected error for missing room, got nil")
	}
}

func TestSetActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoomRepository(db)

	if _, err := repo.CreateRoom(-100, models.Player{ID: 1}); err != nil {
		t.Fatalf("CreateRoom() error = %v", err)
	}

	if err := repo.SetActive(-100, true); err != nil {
		t.Fatalf("SetActive() error = %v", err)
	}

	room, _ := repo.GetRoomByChatID(-100)
	if !room.Active {
		t.Error("room.Active = false after SetActive(true)")
	}

	if err := repo.SetActive(-999, true); err == nil {
		t.Error("SetActive() expected error for missing room, got nil")
	}
}
