package main

import (
	"context"
	"os"
	
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	
	"github.com/autosys-vn/autosys-client/internal/hub"
	"github.com/autosys-vn/autosys-client/internal/notification"
	"github.com/autosys-vn/autosys-client/internal/refresher"
	"github.com/autosys-vn/autosys-client/internal/rest"
	"github.com/autosys-vn/autosys-client/internal/toast"
	"github.com/autosys-vn/autosys-client/internal/token"
	"github.com/autosys-vn/autosys-client/internal/tui"
	"github.com/autosys-vn/autosys-client/internal/util"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	
	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}
	
	log.Info().Msg("configurations loaded successfully ✅")
	
	ctx := context.Background()
	
	session := token.NewSession()
	restClient := rest.NewClient(config.APIBaseURL, config.HTTPTimeout, session)
	defer restClient.Close()
	
	// Sign in; without a valid token the whole notification subsystem
	// stays disabled.
	if err := restClient.Login(ctx, config.Username, config.Password); err != nil {
		log.Fatal().Err(err).Msg("failed to sign in 😣")
	}
	log.Info().Str("recipient_id", session.Payload().RecipientID()).Msg("signed in successfully ✅")
	
	store := notification.NewStore(restClient, config.PreviewSize, config.SettleDelay)
	defer store.Close()
	
	toastCenter := toast.NewCenter(config.ToastDuration)
	defer toastCenter.Close()
	
	// Push là gợi ý: toast hiện ngay, counter chỉ đổi sau khi store
	// refresh lại từ REST.
	hubManager := hub.NewManager(config.HubURL, session)
	hubManager.OnNotificationPushed(toastCenter.ShowNotification)
	hubManager.OnNotificationPushed(store.HandlePushed)
	defer hubManager.Close()
	
	if err := store.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("initial notification refresh failed, starting with empty cache")
	}
	
	hubManager.Open(ctx)
	
	periodicRefresher, err := refresher.NewRefresher(store, config.RefreshInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create refresher 😣")
	}
	if err := periodicRefresher.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start refresher 😣")
	}
	defer periodicRefresher.Stop()
	
	program := tea.NewProgram(tui.NewModel(store, toastCenter, restClient), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatal().Err(err).Msg("failed to run UI 😣")
	}
}
