package flagmode
