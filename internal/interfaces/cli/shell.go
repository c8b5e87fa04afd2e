// Package cli interpreta los comandos de la consola interactiva sobre el WarehouseManager.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-core/internal/application/stock"
	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/interfaces/console"
)

// Nombres de shelf aceptados en los comandos.
const (
	ShelfElectronics = "electronics"
	ShelfGroceries   = "groceries"
)

// ErrUsage comando mal formado; el mensaje incluye la sintaxis esperada.
var ErrUsage = errors.New("uso incorrecto")

// Commands verbos disponibles (también alimenta el autocompletado).
var Commands = []string{"list", "get", "add", "increase", "set", "remove", "summary", "save", "help", "exit"}

const help = `Comandos:
  list <electronics|groceries>
  get <shelf> <id>
  add electronics <id> <nombre> <cantidad> <marca> <garantía_meses> [precio]
  add groceries <id> <nombre> <cantidad> <vence AAAA-MM-DD> [precio]
  increase <shelf> <id> <delta>
  set <shelf> <id> <cantidad>
  remove <shelf> <id>
  summary
  save
  help
  exit`

// SaveFunc exporta los shelves al almacenamiento configurado.
type SaveFunc func(ctx context.Context) error

// Shell ejecuta una línea de comando a la vez; no mantiene estado propio además del manager.
type Shell struct {
	manager *stock.WarehouseManager
	out     *console.Renderer
	save    SaveFunc
	shelves map[string]shelfCommands
}

// NewShell construye el intérprete. save nil deshabilita el comando save.
func NewShell(manager *stock.WarehouseManager, out *console.Renderer, save SaveFunc) *Shell {
	return &Shell{
		manager: manager,
		out:     out,
		save:    save,
		shelves: map[string]shelfCommands{
			ShelfElectronics: shelfAdapter[entity.ElectronicItem]{manager.Electronics},
			ShelfGroceries:   shelfAdapter[entity.GroceryItem]{manager.Groceries},
		},
	}
}

// Execute interpreta line. quit es true para exit/quit. Los errores de dominio
// se devuelven tal cual para que el llamador los muestre y siga.
func (s *Shell) Execute(ctx context.Context, line string) (quit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "exit", "quit":
		return true, nil
	case "help":
		return false, s.out.Message("%s", help)
	case "list":
		return false, s.list(args)
	case "get":
		return false, s.get(args)
	case "add":
		return false, s.add(args)
	case "increase":
		return false, s.mutate(args, "increase <shelf> <id> <delta>", shelfCommands.increase)
	case "set":
		return false, s.mutate(args, "set <shelf> <id> <cantidad>", shelfCommands.set)
	case "remove":
		return false, s.remove(args)
	case "summary":
		return false, s.summary()
	case "save":
		if s.save == nil {
			return false, s.out.Message("persistencia deshabilitada (STORAGE_DRIVER=memory)")
		}
		if err := s.save(ctx); err != nil {
			return false, err
		}
		return false, s.out.Message("snapshot guardado")
	default:
		return false, fmt.Errorf("%w: comando desconocido %q (ver help)", ErrUsage, cmd)
	}
}

func (s *Shell) shelf(name string) (shelfCommands, error) {
	sh, ok := s.shelves[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: shelf desconocido %q (electronics|groceries)", ErrUsage, name)
	}
	return sh, nil
}

func (s *Shell) list(args []string) error {
	if len(args) != 1 {
		return usage("list <electronics|groceries>")
	}
	sh, err := s.shelf(args[0])
	if err != nil {
		return err
	}
	if err := s.out.Section(sh.title()); err != nil {
		return err
	}
	return sh.printAll(s.out)
}

func (s *Shell) get(args []string) error {
	if len(args) != 2 {
		return usage("get <shelf> <id>")
	}
	sh, err := s.shelf(args[0])
	if err != nil {
		return err
	}
	id, err := atoi("id", args[1])
	if err != nil {
		return err
	}
	item, err := sh.get(id)
	if err != nil {
		return err
	}
	return s.out.Render(item)
}

func (s *Shell) mutate(args []string, syntax string, op func(shelfCommands, int, int) (entity.View, error)) error {
	if len(args) != 3 {
		return usage(syntax)
	}
	sh, err := s.shelf(args[0])
	if err != nil {
		return err
	}
	id, err := atoi("id", args[1])
	if err != nil {
		return err
	}
	n, err := atoi("valor", args[2])
	if err != nil {
		return err
	}
	item, err := op(sh, id, n)
	if err != nil {
		return err
	}
	return s.out.Render(item)
}

func (s *Shell) remove(args []string) error {
	if len(args) != 2 {
		return usage("remove <shelf> <id>")
	}
	sh, err := s.shelf(args[0])
	if err != nil {
		return err
	}
	id, err := atoi("id", args[1])
	if err != nil {
		return err
	}
	if err := sh.remove(id); err != nil {
		return err
	}
	return s.out.Message("ítem %d eliminado", id)
}

func (s *Shell) add(args []string) error {
	if len(args) == 0 {
		return usage("add <electronics|groceries> ...")
	}
	switch strings.ToLower(args[0]) {
	case ShelfElectronics:
		return s.addElectronic(args[1:])
	case ShelfGroceries:
		return s.addGrocery(args[1:])
	default:
		_, err := s.shelf(args[0])
		return err
	}
}

func (s *Shell) addElectronic(args []string) error {
	if len(args) != 5 && len(args) != 6 {
		return usage("add electronics <id> <nombre> <cantidad> <marca> <garantía_meses> [precio]")
	}
	id, qty, err := idAndQuantity(args[0], args[2])
	if err != nil {
		return err
	}
	warranty, err := atoi("garantía", args[4])
	if err != nil {
		return err
	}
	item := entity.NewElectronicItem(id, args[1], qty, args[3], warranty)
	if len(args) == 6 {
		price, err := parsePrice(args[5])
		if err != nil {
			return err
		}
		item = item.WithUnitPrice(price)
	}
	if err := s.manager.Electronics.Add(item); err != nil {
		return err
	}
	return s.out.Render(item)
}

func (s *Shell) addGrocery(args []string) error {
	if len(args) != 4 && len(args) != 5 {
		return usage("add groceries <id> <nombre> <cantidad> <vence AAAA-MM-DD> [precio]")
	}
	id, qty, err := idAndQuantity(args[0], args[2])
	if err != nil {
		return err
	}
	expiry, err := time.Parse(time.DateOnly, args[3])
	if err != nil {
		return fmt.Errorf("%w: fecha %q, se espera AAAA-MM-DD", ErrUsage, args[3])
	}
	item := entity.NewGroceryItem(id, args[1], qty, expiry)
	if len(args) == 5 {
		price, err := parsePrice(args[4])
		if err != nil {
			return err
		}
		item = item.WithUnitPrice(price)
	}
	if err := s.manager.Groceries.Add(item); err != nil {
		return err
	}
	return s.out.Render(item)
}

func (s *Shell) summary() error {
	for _, name := range []string{ShelfElectronics, ShelfGroceries} {
		sh := s.shelves[name]
		if err := s.out.Summary(sh.title(), sh.count(), sh.valuation()); err != nil {
			return err
		}
	}
	return nil
}

func usage(syntax string) error {
	return fmt.Errorf("%w: %s", ErrUsage, syntax)
}

func atoi(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s debe ser entero, se recibió %q", ErrUsage, field, s)
	}
	return n, nil
}

func idAndQuantity(id, qty string) (int, int, error) {
	i, err := atoi("id", id)
	if err != nil {
		return 0, 0, err
	}
	q, err := atoi("cantidad", qty)
	if err != nil {
		return 0, 0, err
	}
	return i, q, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: precio %q inválido", ErrUsage, s)
	}
	return d, nil
}
