package services

import (
	"log"
	"sync"
	"time"

	"github.com/AgusMolinaCode/FCI_Api.git/internal/models"
)

// IndicadoresRepositoryInterface define lo que el actualizador necesita del repositorio
type IndicadoresRepositoryInterface interface {
	Guardar(ind models.Indicadores) error
}

// IndicadoresUpdater es un servicio que refresca el bloque de indicadores
// financieros periódicamente consultando las APIs externas
type IndicadoresUpdater struct {
	interval    time.Duration
	repo        IndicadoresRepositoryInterface
	isRunning   bool
	stopChan    chan struct{}
	mutex       sync.Mutex
	lastUpdated time.Time
}

// NewIndicadoresUpdater crea un nuevo actualizador de indicadores
func NewIndicadoresUpdater(interval time.Duration, repo IndicadoresRepositoryInterface) *IndicadoresUpdater {
	return &IndicadoresUpdater{
		interval: interval,
		repo:     repo,
		stopChan: make(chan struct{}),
	}
}

// Start inicia el servicio de actualización de indicadores
func (u *IndicadoresUpdater) Start() {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	if u.isRunning {
		return
	}

	u.isRunning = true
	u.stopChan = make(chan struct{})

	go func() {
		ticker := time.NewTicker(u.interval)
		defer ticker.Stop()

		// Actualizar inmediatamente al iniciar
		u.actualizar()

		for {
			select {
			case <-ticker.C:
				u.actualizar()
			case <-u.stopChan:
				return
			}
		}
	}()

	log.Printf("Servicio de actualización de indicadores iniciado con intervalo de %v", u.interval)
}

// Stop detiene el servicio de actualización de indicadores
func (u *IndicadoresUpdater) Stop() {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	if !u.isRunning {
		return
	}

	u.isRunning = false
	close(u.stopChan)
	log.Printf("Servicio de actualización de indicadores detenido")
}

// actualizar consulta las APIs y guarda el bloque nuevo. Si alguna consulta
// falla se conserva el bloque anterior.
func (u *IndicadoresUpdater) actualizar() {
	if err := u.Refrescar(); err != nil {
		log.Printf("Error al actualizar los indicadores: %v", err)
	}
}

// Refrescar calcula y guarda el bloque de indicadores. Lo usa también el
// endpoint de refresco manual.
func (u *IndicadoresUpdater) Refrescar() error {
	indicadores, err := CalcularIndicadores()
	if err != nil {
		return err
	}

	if err := u.repo.Guardar(indicadores); err != nil {
		return err
	}

	u.mutex.Lock()
	u.lastUpdated = time.Now()
	u.mutex.Unlock()

	log.Printf("Indicadores actualizados: inflación USA %.3f%%, UVA anualizada %.2f%%",
		indicadores.InflacionUSAYTDPct, indicadores.InflacionUVA.AnualizadaPct)
	return nil
}

// GetLastUpdated obtiene la última vez que se refrescaron los indicadores
func (u *IndicadoresUpdater) GetLastUpdated() time.Time {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	return u.lastUpdated
}
