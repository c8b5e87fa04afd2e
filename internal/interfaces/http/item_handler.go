package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-core/internal/application/dto"
	"github.com/jhoicas/inventario-core/internal/application/stock"
	"github.com/jhoicas/inventario-core/internal/domain/entity"
)

// ItemHandler expone un shelf por HTTP; una instancia por variante.
type ItemHandler[T entity.Item[T]] struct {
	shelf *stock.Shelf[T]
}

// NewItemHandler construye el handler sobre el shelf.
func NewItemHandler[T entity.Item[T]](shelf *stock.Shelf[T]) *ItemHandler[T] {
	return &ItemHandler[T]{shelf: shelf}
}

// List godoc
// @Summary      Listar ítems (ordenados por id)
// @Tags         stock
// @Produce      json
// @Param        kind  path  string  true  "electronics | groceries"
// @Success      200   {object}  dto.ListResponse
// @Router       /api/{kind} [get]
func (h *ItemHandler[T]) List(c *fiber.Ctx) error {
	items := h.shelf.List()
	return c.JSON(dto.ListResponse[T]{Kind: h.shelf.Kind(), Total: len(items), Items: items})
}

// GetByID godoc
// @Summary      Obtener ítem por ID
// @Tags         stock
// @Produce      json
// @Param        id   path  int  true  "ID del ítem"
// @Success      200  {object}  object
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{kind}/{id} [get]
func (h *ItemHandler[T]) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser entero")
	}
	item, err := h.shelf.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// Create godoc
// @Summary      Agregar ítem
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  object
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/{kind} [post]
func (h *ItemHandler[T]) Create(c *fiber.Ctx) error {
	var item T
	if err := c.BodyParser(&item); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if item.ItemName() == "" {
		return badRequest(c, "VALIDATION", "name es requerido")
	}
	if err := h.shelf.Add(item); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// SetQuantity godoc
// @Summary      Fijar cantidad
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del ítem"
// @Param        body  body  dto.SetQuantityRequest  true  "Nueva cantidad"
// @Success      200   {object}  object
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/{kind}/{id}/quantity [put]
func (h *ItemHandler[T]) SetQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser entero")
	}
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Quantity == nil {
		return badRequest(c, "VALIDATION", "quantity es requerido")
	}
	item, err := h.shelf.SetQuantity(id, *in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// IncreaseStock godoc
// @Summary      Aumentar stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID del ítem"
// @Param        body  body  dto.IncreaseStockRequest  true  "Delta"
// @Success      200   {object}  object
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/{kind}/{id}/increase [post]
func (h *ItemHandler[T]) IncreaseStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser entero")
	}
	var in dto.IncreaseStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Delta == nil {
		return badRequest(c, "VALIDATION", "delta es requerido")
	}
	item, err := h.shelf.IncreaseStock(id, *in.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary      Eliminar ítem
// @Tags         stock
// @Security     Bearer
// @Param        id   path  int  true  "ID del ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{kind}/{id} [delete]
func (h *ItemHandler[T]) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser entero")
	}
	if err := h.shelf.RemoveByID(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary      Resumen del shelf (ítems y valorización)
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/{kind}/summary [get]
func (h *ItemHandler[T]) Summary(c *fiber.Ctx) error {
	return c.JSON(dto.SummaryResponse{
		Kind:      h.shelf.Kind(),
		Items:     h.shelf.Len(),
		Valuation: h.shelf.Valuation(),
	})
}

// mount registra las rutas del shelf; las mutaciones pasan por guard.
func (h *ItemHandler[T]) mount(r fiber.Router, guard ...fiber.Handler) {
	r.Get("/", h.List)
	r.Get("/summary", h.Summary)
	r.Get("/:id", h.GetByID)

	mutate := func(handler fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, guard...), handler)
	}
	r.Post("/", mutate(h.Create)...)
	r.Put("/:id/quantity", mutate(h.SetQuantity)...)
	r.Post("/:id/increase", mutate(h.IncreaseStock)...)
	r.Delete("/:id", mutate(h.Delete)...)
}
