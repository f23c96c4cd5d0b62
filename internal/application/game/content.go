package game

import (
	"context"

	"gameforge-api/internal/domain/entity"
	"gameforge-api/pkg/errors"
)

// ListCharacters 列出游戏角色（需可见）
func (s *Service) ListCharacters(ctx context.Context, userID, gameID string) ([]*entity.Character, error) {
	ctx, span := tracer.Start(ctx, "game.ListCharacters")
	defer span.End()

	if _, err := s.GetGame(ctx, userID, gameID); err != nil {
		return nil, err
	}

	characters, err := s.characters.ListByGame(ctx, gameID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to list characters")
	}
	return characters, nil
}

// CharacterInput 角色手动创建/更新入参
type CharacterInput struct {
	Name       string
	Class      string
	Role       string
	Background string
	Gameplay   string
}

// CreateCharacter 手动添加角色（仅创建者）
func (s *Service) CreateCharacter(ctx context.Context, userID, gameID string, in CharacterInput) (*entity.Character, error) {
	ctx, span := tracer.Start(ctx, "game.CreateCharacter")
	defer span.End()

	if _, err := s.getOwnedGame(ctx, userID, gameID); err != nil {
		return nil, err
	}

	character := &entity.Character{
		GameID:     gameID,
		Name:       in.Name,
		Class:      in.Class,
		Role:       in.Role,
		Background: in.Background,
		Gameplay:   in.Gameplay,
	}
	if err := s.characters.Create(ctx, character); err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to create character")
	}
	return character, nil
}

// UpdateCharacter 更新角色（仅创建者）
func (s *Service) UpdateCharacter(ctx context.Context, userID, characterID string, in CharacterInput) (*entity.Character, error) {
	ctx, span := tracer.Start(ctx, "game.UpdateCharacter")
	defer span.End()

	character, err := s.characters.GetByID(ctx, characterID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load character")
	}
	if character == nil {
		return nil, errors.ErrCharacterNotFound
	}
	if _, err := s.getOwnedGame(ctx, userID, character.GameID); err != nil {
		return nil, err
	}

	if in.Name != "" {
		character.Name = in.Name
	}
	if in.Class != "" {
		character.Class = in.Class
	}
	if in.Role != "" {
		character.Role = in.Role
	}
	if in.Background != "" {
		character.Background = in.Background
	}
	if in.Gameplay != "" {
		character.Gameplay = in.Gameplay
	}

	if err := s.characters.Update(ctx, character); err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to update character")
	}
	return character, nil
}

// DeleteCharacter 删除角色（仅创建者）
func (s *Service) DeleteCharacter(ctx context.Context, userID, characterID string) error {
	ctx, span := tracer.Start(ctx, "game.DeleteCharacter")
	defer span.End()

	character, err := s.characters.GetByID(ctx, characterID)
	if err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to load character")
	}
	if character == nil {
		return errors.ErrCharacterNotFound
	}
	if _, err := s.getOwnedGame(ctx, userID, character.GameID); err != nil {
		return err
	}

	if err := s.characters.Delete(ctx, characterID); err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to delete character")
	}
	return nil
}

// ListLocations 列出游戏场景（需可见）
func (s *Service) ListLocations(ctx context.Context, userID, gameID string) ([]*entity.Location, error) {
	ctx, span := tracer.Start(ctx, "game.ListLocations")
	defer span.End()

	if _, err := s.GetGame(ctx, userID, gameID); err != nil {
		return nil, err
	}

	locations, err := s.locations.ListByGame(ctx, gameID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to list locations")
	}
	return locations, nil
}

// LocationInput 场景手动创建/更新入参
type LocationInput struct {
	Name        string
	Description string
}

// CreateLocation 手动添加场景（仅创建者）
func (s *Service) CreateLocation(ctx context.Context, userID, gameID string, in LocationInput) (*entity.Location, error) {
	ctx, span := tracer.Start(ctx, "game.CreateLocation")
	defer span.End()

	if _, err := s.getOwnedGame(ctx, userID, gameID); err != nil {
		return nil, err
	}

	location := &entity.Location{
		GameID:      gameID,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to create location")
	}
	return location, nil
}

// UpdateLocation 更新场景（仅创建者）
func (s *Service) UpdateLocation(ctx context.Context, userID, locationID string, in LocationInput) (*entity.Location, error) {
	ctx, span := tracer.Start(ctx, "game.UpdateLocation")
	defer span.End()

	location, err := s.locations.GetByID(ctx, locationID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load location")
	}
	if location == nil {
		return nil, errors.ErrLocationNotFound
	}
	if _, err := s.getOwnedGame(ctx, userID, location.GameID); err != nil {
		return nil, err
	}

	if in.Name != "" {
		location.Name = in.Name
	}
	if in.Description != "" {
		location.Description = in.Description
	}

	if err := s.locations.Update(ctx, location); err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to update location")
	}
	return location, nil
}

// DeleteLocation 删除场景（仅创建者）
func (s *Service) DeleteLocation(ctx context.Context, userID, locationID string) error {
	ctx, span := tracer.Start(ctx, "game.DeleteLocation")
	defer span.End()

	location, err := s.locations.GetByID(ctx, locationID)
	if err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to load location")
	}
	if location == nil {
		return errors.ErrLocationNotFound
	}
	if _, err := s.getOwnedGame(ctx, userID, location.GameID); err != nil {
		return err
	}

	if err := s.locations.Delete(ctx, locationID); err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to delete location")
	}
	return nil
}

// ListImages 列出游戏图片（需可见）
func (s *Service) ListImages(ctx context.Context, userID, gameID string) ([]*entity.GameImage, error) {
	ctx, span := tracer.Start(ctx, "game.ListImages")
	defer span.End()

	if _, err := s.GetGame(ctx, userID, gameID); err != nil {
		return nil, err
	}

	images, err := s.images.ListByGame(ctx, gameID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to list images")
	}
	return images, nil
}
