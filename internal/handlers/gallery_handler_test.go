package handlers_test

import (
	"net/http"
	"testing"
)

func TestGalleryCRUDAndDeleteCascade(t *testing.T) {
	env := newTestEnv()
	admin := seedAdmin(t, env, "admin@x.com")

	// Pretend the asset was uploaded earlier.
	env.Objects.objects["falls.jpg"] = "jpeg-bytes"

	code, resp := doJSON(t, env, "POST", "/gallery",
		`{"title":"Jog Falls","imageUrl":"store://images/falls.jpg","storageId":"falls.jpg"}`, admin)
	if code != http.StatusOK {
		t.Fatalf("create: code=%d resp=%v", code, resp)
	}
	id := resp["image"].(map[string]interface{})["id"].(string)

	// Public reads.
	code, resp = doJSON(t, env, "GET", "/gallery", "", "")
	if code != http.StatusOK {
		t.Fatalf("list: code=%d resp=%v", code, resp)
	}
	if images := resp["images"].([]interface{}); len(images) != 1 {
		t.Fatalf("list has %d images, want 1", len(images))
	}
	if code, _ = doJSON(t, env, "GET", "/gallery/"+id, "", ""); code != http.StatusOK {
		t.Fatalf("get: code=%d", code)
	}

	code, resp = doJSON(t, env, "PUT", "/gallery/"+id, `{"title":"Jog Falls in Monsoon"}`, admin)
	if code != http.StatusOK {
		t.Fatalf("update: code=%d resp=%v", code, resp)
	}
	if resp["image"].(map[string]interface{})["title"] != "Jog Falls in Monsoon" {
		t.Fatalf("update = %v", resp)
	}

	code, resp = doJSON(t, env, "DELETE", "/gallery/"+id, "", admin)
	if code != http.StatusOK {
		t.Fatalf("delete: code=%d resp=%v", code, resp)
	}
	// Both the record and the stored object must be gone.
	if code, _ = doJSON(t, env, "GET", "/gallery/"+id, "", ""); code != http.StatusNotFound {
		t.Fatalf("get after delete: code=%d, want 404", code)
	}
	if _, found := env.Objects.objects["falls.jpg"]; found {
		t.Fatal("stored object survived gallery delete")
	}
}

func TestGalleryStorageIDUpdateMovesCascadeTarget(t *testing.T) {
	env := newTestEnv()
	admin := seedAdmin(t, env, "admin@x.com")

	env.Objects.objects["old.jpg"] = "old-bytes"
	env.Objects.objects["new.jpg"] = "new-bytes"

	code, resp := doJSON(t, env, "POST", "/gallery",
		`{"title":"Dudhsagar","imageUrl":"store://images/old.jpg","storageId":"old.jpg"}`, admin)
	if code != http.StatusOK {
		t.Fatalf("create: code=%d resp=%v", code, resp)
	}
	id := resp["image"].(map[string]interface{})["id"].(string)

	// Repointing the record at a re-uploaded asset must stick.
	code, resp = doJSON(t, env, "PUT", "/gallery/"+id,
		`{"imageUrl":"store://images/new.jpg","storageId":"new.jpg"}`, admin)
	if code != http.StatusOK {
		t.Fatalf("update: code=%d resp=%v", code, resp)
	}

	code, resp = doJSON(t, env, "GET", "/gallery/"+id, "", "")
	if code != http.StatusOK {
		t.Fatalf("get: code=%d resp=%v", code, resp)
	}
	img := resp["image"].(map[string]interface{})
	if img["storageId"] != "new.jpg" {
		t.Fatalf("storageId = %v after update, want new.jpg", img["storageId"])
	}

	// The cascade must follow the updated key, not the original one.
	if code, _ = doJSON(t, env, "DELETE", "/gallery/"+id, "", admin); code != http.StatusOK {
		t.Fatalf("delete: code=%d", code)
	}
	if _, found := env.Objects.objects["new.jpg"]; found {
		t.Fatal("updated object survived the cascade")
	}
}

func TestGalleryMutationsRequireAdmin(t *testing.T) {
	env := newTestEnv()

	code, _ := doJSON(t, env, "POST", "/gallery", `{"title":"x","imageUrl":"y"}`, "")
	if code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create: code=%d, want 401", code)
	}

	user := registerAndLogin(t, env, "user@x.com")
	code, _ = doJSON(t, env, "POST", "/gallery", `{"title":"x","imageUrl":"y"}`, user)
	if code != http.StatusForbidden {
		t.Fatalf("non-admin create: code=%d, want 403", code)
	}
}
