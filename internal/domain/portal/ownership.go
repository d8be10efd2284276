package portal

import "github.com/jhoicas/perfume-portal/internal/domain/entity"

// Owned registro anotado con su cliente. Owner es nil si ClientID no existe en la colección.
type Owned[T entity.ClientRef] struct {
	Record T
	Owner  *entity.Client
}

// OwnerName nombre del cliente o "" si el registro quedó huérfano.
func (o Owned[T]) OwnerName() string {
	if o.Owner == nil {
		return ""
	}
	return o.Owner.Name
}

// ResolveOwners une cada registro con el cliente cuyo ID coincide con su ClientID.
// Búsqueda lineal (O(n·m)): las colecciones del taller son de decenas de elementos.
// Un ClientID colgante no es un error; se devuelve Owner nil. Se respeta el orden de entrada.
func ResolveOwners[T entity.ClientRef](records []T, clients []entity.Client) []Owned[T] {
	out := make([]Owned[T], 0, len(records))
	for _, r := range records {
		out = append(out, Owned[T]{Record: r, Owner: findClient(clients, r.OwnerID())})
	}
	return out
}

// FilterByClient devuelve la subsecuencia ordenada de registros con ClientID igual a clientID.
// Es idempotente; para un cliente sin registros devuelve un slice vacío (no nil).
func FilterByClient[T entity.ClientRef](records []T, clientID string) []T {
	out := make([]T, 0)
	for _, r := range records {
		if r.OwnerID() == clientID {
			out = append(out, r)
		}
	}
	return out
}

func findClient(clients []entity.Client, id string) *entity.Client {
	for i := range clients {
		if clients[i].ID == id {
			c := clients[i]
			return &c
		}
	}
	return nil
}
