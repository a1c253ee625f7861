package box2d

/// The particle-body contact, regenerated every step and consumed by the
/// impulse response pass.
type B2ParticleBodyContact struct {
	/// Index of the particle making contact.
	Index int

	/// Index of the body making contact. The contact does not own the body.
	Body int

	/// Weight of the contact. A value between 0.0f and 1.0f.
	Weight float64

	/// The normalized direction from the particle to the body.
	Normal B2Vec2

	/// The effective mass used in calculating force.
	Mass float64
}

/// Build the contact between a particle and a body from the result of a
/// distance query. normal points from the body surface to the particle and
/// distance is the particle center's distance to that surface.
func MakeB2ParticleBodyContact(particleIndex int, bodyIndex int, body B2Body, particlePosition B2Vec2, particleInvMass float64, distance float64, normal B2Vec2, diameter float64) B2ParticleBodyContact {
	B2Assert(diameter > 0.0)

	rp := B2Vec2Sub(particlePosition, body.GetWorldCenter())
	rpn := B2Vec2Cross(rp, normal)
	invM := particleInvMass + body.M_invMass + body.M_invI*rpn*rpn

	mass := 0.0
	if invM > 0.0 {
		mass = 1.0 / invM
	}

	return B2ParticleBodyContact{
		Index:  particleIndex,
		Body:   bodyIndex,
		Weight: B2Clamp(1.0-distance/diameter, 0.0, 1.0),
		Normal: normal.OperatorNegate(),
		Mass:   mass,
	}
}

/// Per-step storage for particle-body contacts. Reset keeps the backing
/// array so refilling does not allocate once warmed up.
type B2ParticleBodyContactBuffer struct {
	M_contacts []B2ParticleBodyContact
}

func (buffer *B2ParticleBodyContactBuffer) Reset() {
	buffer.M_contacts = buffer.M_contacts[:0]
}

func (buffer *B2ParticleBodyContactBuffer) Add(contact B2ParticleBodyContact) {
	buffer.M_contacts = append(buffer.M_contacts, contact)
}

func (buffer B2ParticleBodyContactBuffer) GetCount() int {
	return len(buffer.M_contacts)
}

/// The contacts of the current step. The slice is invalidated by Reset.
func (buffer B2ParticleBodyContactBuffer) GetContacts() []B2ParticleBodyContact {
	return buffer.M_contacts
}
