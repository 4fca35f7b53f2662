package usecases

import (
	"fmt"
	"time"

	"mojopi/entities"
	"mojopi/repositories"

	"golang.org/x/crypto/bcrypt"
)

// EventPublisher receives registry activity notifications. A nil publisher
// is valid and drops events.
type EventPublisher interface {
	Publish(event entities.RegistryEvent)
}

type AccountUseCase struct {
	UserRepo    repositories.UserRepository
	ProfileRepo repositories.ProfileRepository
	Events      EventPublisher
}

func NewAccountUseCase(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository, events EventPublisher) *AccountUseCase {
	return &AccountUseCase{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		Events:      events,
	}
}

// Register creates a User and its Profile after format validation.
// Duplicate email or username reports ErrConflict.
func (uc *AccountUseCase) Register(email, username, password string) (*entities.User, error) {
	if !IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if !IsValidUsername(username) {
		return nil, fmt.Errorf("%w: invalid username", ErrInvalidInput)
	}

	var hash string
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	user := &entities.User{
		Email:    email,
		Username: username,
		Password: hash,
	}
	if err := uc.UserRepo.Create(user); err != nil {
		return nil, translate(err)
	}

	profile := &entities.Profile{
		UserID:   user.ID,
		IsPublic: true,
	}
	if err := uc.ProfileRepo.Create(profile); err != nil {
		return nil, translate(err)
	}

	uc.publish(entities.RegistryEvent{
		Kind: entities.EventUserRegistered,
		Name: user.Username,
		At:   time.Now().Format(time.RFC3339),
	})
	return user, nil
}

// Login authenticates by email and password. When the stored hash is empty
// the login succeeds but needReset is true and the caller must force a
// password reset. A wrong password reports ErrForbidden without touching
// the record.
func (uc *AccountUseCase) Login(email, password string) (user *entities.User, needReset bool, err error) {
	user, err = uc.UserRepo.GetByEmail(email)
	if err != nil {
		return nil, false, translate(err)
	}

	if user.Password == "" {
		return user, true, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, false, fmt.Errorf("%w: wrong password", ErrForbidden)
	}
	return user, false, nil
}

// ResetPassword replaces the stored hash. The two values must match.
func (uc *AccountUseCase) ResetPassword(userID, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return fmt.Errorf("%w: new password is not equal to confirm password", ErrForbidden)
	}
	if newPassword == "" {
		return fmt.Errorf("%w: empty password", ErrInvalidInput)
	}

	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		return translate(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	return translate(uc.UserRepo.Update(user))
}

// GetUser looks up a user by id.
func (uc *AccountUseCase) GetUser(userID string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// GetProfile returns a user's profile. A private profile is reported as
// ErrNotFound to anyone but its owner, indistinguishable from a missing one.
func (uc *AccountUseCase) GetProfile(userID, viewerID string) (*entities.Profile, *entities.User, error) {
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		return nil, nil, translate(err)
	}
	profile, err := uc.ProfileRepo.GetByUserID(userID)
	if err != nil {
		return nil, nil, translate(err)
	}
	if !profile.IsPublic && viewerID != userID {
		return nil, nil, fmt.Errorf("%w: profile is private", ErrNotFound)
	}
	return profile, user, nil
}

// EditProfile updates the username and the free-text fields. The free-text
// fields are always written; a colliding username is left unchanged and the
// call reports ErrConflict after the rest of the update went through.
func (uc *AccountUseCase) EditProfile(userID, username, education, experience, bio string) error {
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		return translate(err)
	}

	var usernameErr error
	if username != "" && username != user.Username {
		if !IsValidUsername(username) {
			usernameErr = fmt.Errorf("%w: invalid username", ErrInvalidInput)
		} else {
			old := user.Username
			user.Username = username
			if err := translate(uc.UserRepo.Update(user)); err != nil {
				user.Username = old
				usernameErr = err
			}
		}
	}

	profile, err := uc.ProfileRepo.GetByUserID(userID)
	if err != nil {
		return translate(err)
	}
	profile.Education = education
	profile.Experience = experience
	profile.Bio = bio
	if err := translate(uc.ProfileRepo.Update(profile)); err != nil {
		return err
	}
	return usernameErr
}

// SetAvatar records the stored avatar filename on the user.
func (uc *AccountUseCase) SetAvatar(userID, storedName string) error {
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		return translate(err)
	}
	user.Picture = storedName
	return translate(uc.UserRepo.Update(user))
}

func (uc *AccountUseCase) publish(event entities.RegistryEvent) {
	if uc.Events != nil {
		uc.Events.Publish(event)
	}
}
