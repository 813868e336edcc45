package storefront

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	cartStorageFile     = "cart-storage.json"
	wishlistStorageFile = "wishlist-storage.json"
)

type cartState struct {
	Items []Item `json:"items"`
}

type wishlistState struct {
	TemplateIDs []string `json:"templateIds"`
}

// SaveState persists cart items and wishlist ids under dir. The applied
// coupon is deliberately not written: discounts depend on live order totals
// and must be re-validated every session.
func SaveState(dir string, cart *CartStore, wishlist *WishlistStore) error {
	if err := writeJSON(filepath.Join(dir, cartStorageFile), cartState{Items: cart.Items()}); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, wishlistStorageFile), wishlistState{TemplateIDs: wishlist.IDs()})
}

// LoadState restores persisted items and ids, replacing current store
// contents. Missing files are not an error; the stores start empty.
func LoadState(dir string, cart *CartStore, wishlist *WishlistStore) error {
	var cs cartState
	if err := readJSON(filepath.Join(dir, cartStorageFile), &cs); err != nil {
		return err
	}
	cart.Clear()
	for _, it := range cs.Items {
		cart.AddItem(it)
	}

	var ws wishlistState
	if err := readJSON(filepath.Join(dir, wishlistStorageFile), &ws); err != nil {
		return err
	}
	wishlist.replace(ws.TemplateIDs)
	return nil
}

func writeJSON(path string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func readJSON(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(raw, v)
}
