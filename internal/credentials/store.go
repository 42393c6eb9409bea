package credentials

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// KeyName is the env key holding the OpenRouter API key.
const KeyName = "OPENROUTER_KEY"

// Store keeps the provider API key in an env file. The chat client never
// touches this store; it only ever receives the current value as a string.
type Store struct {
	path string

	mu    sync.RWMutex
	value string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the key from the env file, falling back to the process
// environment when the file is absent. A missing key is not an error; Get
// simply returns the empty string until one is saved.
func (s *Store) Load() (string, error) {
	env, err := godotenv.Read(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		env = nil
	}

	value := env[KeyName]
	if value == "" {
		value = os.Getenv(KeyName)
	}

	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
	return value, nil
}

// Get returns the current key, empty if none is set.
func (s *Store) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Save writes the key to the env file and updates the cached value.
func (s *Store) Save(value string) error {
	env, err := godotenv.Read(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		env = make(map[string]string)
	}
	env[KeyName] = value

	if err := godotenv.Write(env, s.path); err != nil {
		return err
	}

	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
	return nil
}
