package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"localoop/config"
	"localoop/di"
	"localoop/discovery"
	"localoop/render"
)

const mapSnapshotFile = "localoop_map.html"

func main() {
	container := di.NewContainer("dev")
	ctx := context.Background()

	// The dev container queries the local provider emulator; bring it up
	// before any screen mounts.
	if container.PlacesStubServer != nil {
		go container.PlacesStubServer.Start()
		if err := waitForStubServer(); err != nil {
			log.Fatalf("Places stub server did not come up: %v", err)
		}
	}

	// Sign in with the seeded demo account.
	session, err := container.AuthProvider.SignIn(ctx, "demo", "localoop")
	if err != nil {
		log.Fatalf("Sign-in failed: %v", err)
	}
	container.SessionContext.SetSession(session)

	user, _ := container.SessionContext.CurrentUser()
	fmt.Printf("Signed in as %s <%s>\n", user.Username, user.Email)

	runDashboard(ctx, container)
	runMap(ctx, container)
}

// runDashboard mounts the dashboard screen and prints the card list.
func runDashboard(ctx context.Context, container *di.Container) {
	fmt.Println("\n--- Dashboard ---")
	snap := mountAndWait(ctx, container.DashboardCoordinator)
	container.ListRenderer.Render(snap.Results, snap.Loading, snap.QueryErr)
}

// runMap mounts the map screen and writes the HTML map snapshot.
func runMap(ctx context.Context, container *di.Container) {
	fmt.Println("\n--- Map ---")
	coordinator := container.MapCoordinator
	snap := mountAndWait(ctx, coordinator)
	if snap.QueryErr != nil {
		fmt.Printf("Something went wrong: %v\n", snap.QueryErr)
		return
	}

	region, ok := coordinator.InitialRegion()
	if !ok {
		fmt.Println("Location is required to show the map.")
		return
	}

	err := render.PlotDiscoveryMapToFile(
		mapSnapshotFile, region, config.SEARCH_RADIUS_METERS, snap.Results)
	if err != nil {
		log.Printf("Failed to write map snapshot: %v", err)
		return
	}
	fmt.Printf("Map with %d places written to %s\n", len(snap.Results), mapSnapshotFile)
}

// waitForStubServer polls the emulator's ping route until it answers.
func waitForStubServer() error {
	var lastErr error
	for i := 0; i < 40; i++ {
		resp, err := http.Get(config.STUB_PING_ENDPOINT)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
			lastErr = fmt.Errorf("unexpected ping status: %s", resp.Status)
		} else {
			lastErr = err
		}
		time.Sleep(50 * time.Millisecond)
	}
	return lastErr
}

// mountAndWait runs the mount transition and blocks until the initial query
// settles (or location acquisition fails).
func mountAndWait(ctx context.Context, coordinator *discovery.Coordinator) discovery.Snapshot {
	updates := make(chan discovery.Snapshot, 16)
	coordinator.SetListener(func(s discovery.Snapshot) { updates <- s })
	defer coordinator.SetListener(nil)

	go coordinator.Mount(ctx)

	for snap := range updates {
		if snap.LocationErr != nil {
			fmt.Printf("Location problem: %v (use retry to try again)\n", snap.LocationErr)
			return snap
		}
		if !snap.Loading {
			return snap
		}
	}
	return discovery.Snapshot{}
}
