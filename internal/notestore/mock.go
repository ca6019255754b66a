package notestore

import "context"

// MockStore permite tests sin llamar al store remoto real.
type MockStore struct {
	CreateID   string
	CreateErr  error
	UpdateErr  error
	CreateCall int
	UpdateCall int
	LastID     string
	LastText   string
}

func (m *MockStore) CreateNote(ctx context.Context, sectionID, content string) (string, error) {
	m.CreateCall++
	m.LastText = content
	return m.CreateID, m.CreateErr
}

func (m *MockStore) UpdateNote(ctx context.Context, remoteID, content string) error {
	m.UpdateCall++
	m.LastID = remoteID
	m.LastText = content
	return m.UpdateErr
}
